// SPDX-License-Identifier: Apache-2.0

package germanyid

// backRecordSchema describes the native record of BackRecognizer in CUE.
// Only resultState is required; every other field may be absent or null, and
// fields added by newer engines are accepted.
const backRecordSchema = `
#Date: {
	day:   number
	month: number
	year:  number
}

#Text: string | null

#Record: {
	resultState: number | string

	address?:            #Text
	addressCity?:        #Text
	addressHouseNumber?: #Text
	addressStreet?:      #Text
	addressZipCode?:     #Text
	authority?:          #Text
	dateOfBirth?:        #Date | null
	dateOfExpiry?:       #Date | null
	dateOfIssue?:        #Date | null
	documentCode?:       #Text
	documentNumber?:     #Text
	eyeColour?:          #Text
	fullDocumentImage?:  #Text
	height?:             #Text
	issuer?:             #Text
	mrzParsed?:          bool
	mrzText?:            #Text
	mrzVerified?:        bool
	nationality?:        #Text
	opt1?:               #Text
	opt2?:               #Text
	primaryId?:          #Text
	secondaryId?:        #Text
	sex?:                #Text
	...
}
`
