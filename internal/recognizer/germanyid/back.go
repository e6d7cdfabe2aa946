// SPDX-License-Identifier: Apache-2.0

package germanyid

import (
	"github.com/docscan/recognizer-mcp/internal/recognizer"
)

// BackRecognizerType is the type tag the host uses to route native results.
const BackRecognizerType = "GermanyIdBackRecognizer"

// BackResult is the result of scanning the back side of a German ID card.
// Nil fields were not reported by the engine. Results are never modified
// after MapResult returns.
type BackResult struct {
	recognizer.ResultBase `yaml:",inline"`

	// Address is the full address of the card holder.
	Address            *string `json:"address" yaml:"address"`
	AddressCity        *string `json:"addressCity" yaml:"addressCity"`
	AddressHouseNumber *string `json:"addressHouseNumber" yaml:"addressHouseNumber"`
	AddressStreet      *string `json:"addressStreet" yaml:"addressStreet"`
	AddressZipCode     *string `json:"addressZipCode" yaml:"addressZipCode"`
	// Authority is the issuing authority.
	Authority *string `json:"authority" yaml:"authority"`

	// DateOfBirth and DateOfExpiry come from the MRZ (YYMMDD) and are nil
	// when the engine could not convert them.
	DateOfBirth  *recognizer.Date `json:"dateOfBirth" yaml:"dateOfBirth"`
	DateOfExpiry *recognizer.Date `json:"dateOfExpiry" yaml:"dateOfExpiry"`
	DateOfIssue  *recognizer.Date `json:"dateOfIssue" yaml:"dateOfIssue"`

	// DocumentCode has two characters; for MRTDs the first one is A, C or I.
	DocumentCode *string `json:"documentCode" yaml:"documentCode"`
	// DocumentNumber has up to 9 characters.
	DocumentNumber *string `json:"documentNumber" yaml:"documentNumber"`
	EyeColour      *string `json:"eyeColour" yaml:"eyeColour"`

	FullDocumentImage *recognizer.Image `json:"fullDocumentImage" yaml:"fullDocumentImage"`

	Height *string `json:"height" yaml:"height"`
	// Issuer is the two or three letter code of the issuing state.
	Issuer *string `json:"issuer" yaml:"issuer"`

	MRZParsed   bool    `json:"mrzParsed" yaml:"mrzParsed"`
	MRZText     *string `json:"mrzText" yaml:"mrzText"`
	MRZVerified bool    `json:"mrzVerified" yaml:"mrzVerified"`

	Nationality *string `json:"nationality" yaml:"nationality"`
	// Opt1 and Opt2 are the MRZ optional data fields; nil or empty when not
	// available.
	Opt1 *string `json:"opt1" yaml:"opt1"`
	Opt2 *string `json:"opt2" yaml:"opt2"`
	// PrimaryID and SecondaryID join multiple name components with spaces.
	PrimaryID   *string `json:"primaryId" yaml:"primaryId"`
	SecondaryID *string `json:"secondaryId" yaml:"secondaryId"`
	Sex         *string `json:"sex" yaml:"sex"`
}

func (r *BackResult) RecognizerType() string {
	return BackRecognizerType
}

// BackRecognizer scans the back side of German national ID cards.
//
// The extraction toggles are hints for the native engine. Mapping ignores
// them: a field the engine populated anyway is still returned.
type BackRecognizer struct {
	recognizer.Base `yaml:",inline"`

	DetectGlare        bool `json:"detectGlare" yaml:"detectGlare"`
	ExtractAddress     bool `json:"extractAddress" yaml:"extractAddress"`
	ExtractAuthority   bool `json:"extractAuthority" yaml:"extractAuthority"`
	ExtractDateOfIssue bool `json:"extractDateOfIssue" yaml:"extractDateOfIssue"`
	ExtractEyeColour   bool `json:"extractEyeColour" yaml:"extractEyeColour"`
	ExtractHeight      bool `json:"extractHeight" yaml:"extractHeight"`

	FullDocumentImageExtensionFactors recognizer.ImageExtensionFactors `json:"fullDocumentImageExtensionFactors" yaml:"fullDocumentImageExtensionFactors"`
	ReturnFullDocumentImage           bool                             `json:"returnFullDocumentImage" yaml:"returnFullDocumentImage"`
}

// NewBackRecognizer returns a recognizer with every extraction enabled and
// the full document image disabled.
func NewBackRecognizer() *BackRecognizer {
	return &BackRecognizer{
		Base:               recognizer.Base{Type: BackRecognizerType},
		DetectGlare:        true,
		ExtractAddress:     true,
		ExtractAuthority:   true,
		ExtractDateOfIssue: true,
		ExtractEyeColour:   true,
		ExtractHeight:      true,
	}
}

// NewBack is a recognizer.Factory for BackRecognizer.
func NewBack() recognizer.Configuration {
	return NewBackRecognizer()
}

func (c *BackRecognizer) MapResult(record recognizer.Record) recognizer.Result {
	return &BackResult{
		ResultBase:         recognizer.ResultBase{ResultState: record.ResultState()},
		Address:            record.String("address"),
		AddressCity:        record.String("addressCity"),
		AddressHouseNumber: record.String("addressHouseNumber"),
		AddressStreet:      record.String("addressStreet"),
		AddressZipCode:     record.String("addressZipCode"),
		Authority:          record.String("authority"),
		DateOfBirth:        record.Date("dateOfBirth"),
		DateOfExpiry:       record.Date("dateOfExpiry"),
		DateOfIssue:        record.Date("dateOfIssue"),
		DocumentCode:       record.String("documentCode"),
		DocumentNumber:     record.String("documentNumber"),
		EyeColour:          record.String("eyeColour"),
		FullDocumentImage:  record.Image("fullDocumentImage"),
		Height:             record.String("height"),
		Issuer:             record.String("issuer"),
		MRZParsed:          record.Bool("mrzParsed"),
		MRZText:            record.String("mrzText"),
		MRZVerified:        record.Bool("mrzVerified"),
		Nationality:        record.String("nationality"),
		Opt1:               record.String("opt1"),
		Opt2:               record.String("opt2"),
		PrimaryID:          record.String("primaryId"),
		SecondaryID:        record.String("secondaryId"),
		Sex:                record.String("sex"),
	}
}

func (c *BackRecognizer) RecordSchema() string {
	return backRecordSchema
}
