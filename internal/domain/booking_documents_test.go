package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-agency/internal/pkg/errors"
)

func TestBooking_SetDocumentField_UpdatesStatus(t *testing.T) {
	b := newTestBooking(t, tourInput(true, false))
	_, err := b.AddAdult("Петров", "Пётр", "")
	require.NoError(t, err)

	require.NoError(t, b.SetDocumentField(0, 0, "series", "1234"))
	passport, err := b.Document(0, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusAbsent, passport.Status)

	require.NoError(t, b.SetDocumentField(0, 0, "number", "567890"))
	assert.Equal(t, StatusAvailable, passport.Status)

	value, err := b.DocumentField(0, 0, "number")
	require.NoError(t, err)
	assert.Equal(t, "567890", value)

	require.NoError(t, b.VerifyDocument(0, 0))
	assert.Equal(t, StatusVerified, passport.Status)

	require.NoError(t, b.SetDocumentField(0, 0, "issuedBy", "ОВД"))
	assert.Equal(t, StatusVerified, passport.Status, "verified status survives edits while filled")

	require.NoError(t, b.SetDocumentField(0, 0, "number", ""))
	assert.Equal(t, StatusAbsent, passport.Status)
}

func TestBooking_SetDocumentField_Normalizes(t *testing.T) {
	b := newTestBooking(t, tourInput(true, false))
	_, err := b.AddAdult("Петров", "Пётр", "")
	require.NoError(t, err)

	require.NoError(t, b.SetDocumentField(0, 1, "number", "1234 5678 9012 3456"))
	value, err := b.DocumentField(0, 1, "number")
	require.NoError(t, err)
	assert.Equal(t, "1234567890123456", value)

	require.NoError(t, b.SetDocumentField(BookingDocumentsOwner, 0, "ticketNumber", "su-123456"))
	value, err = b.DocumentField(BookingDocumentsOwner, 0, "ticketNumber")
	require.NoError(t, err)
	assert.Equal(t, "SU-123456", value)
}

func TestBooking_VerifyDocument_RejectsInvalid(t *testing.T) {
	b := newTestBooking(t, tourInput(true, false))

	err := b.VerifyDocument(BookingDocumentsOwner, 0)
	assert.ErrorIs(t, err, errors.ErrValidationFailed)
	doc, _ := b.Document(BookingDocumentsOwner, 0)
	assert.Equal(t, StatusAbsent, doc.Status)
}

func TestBooking_AddRemoveDocument(t *testing.T) {
	b := newTestBooking(t, tourInput(true, false))
	_, err := b.AddAdult("Петров", "Пётр", "")
	require.NoError(t, err)

	_, err = b.AddDocument(0, DocSNILS)
	require.NoError(t, err)
	_, err = b.AddDocument(0, DocSNILS)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	_, err = b.AddDocument(0, DocumentType(42))
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Equal(t, []DocumentType{DocPassport, DocOMSPolicy, DocSNILS}, documentTypes(b.Travelers()[0].Documents))

	assert.ErrorIs(t, b.RemoveDocument(0, 0), errors.ErrInvalidArgument)
	require.NoError(t, b.RemoveDocument(0, 2))
	assert.Equal(t, []DocumentType{DocPassport, DocOMSPolicy}, documentTypes(b.Travelers()[0].Documents))

	_, err = b.AddDocument(BookingDocumentsOwner, DocVoucher)
	require.NoError(t, err)
	assert.Equal(t, []DocumentType{DocTickets, DocVoucher}, documentTypes(b.Documents()))
	assert.ErrorIs(t, b.RemoveDocument(BookingDocumentsOwner, 0), errors.ErrInvalidArgument)

	_, err = b.AddDocument(3, DocINN)
	assert.ErrorIs(t, err, errors.ErrTravelerNotFound)
}

func TestBooking_SetDocumentStatus(t *testing.T) {
	b := newTestBooking(t, tourInput(true, false))
	require.NoError(t, b.SetDocumentStatus(BookingDocumentsOwner, 0, StatusVerified))
	assert.True(t, len(MissingDocumentsSummary(b)) == 0)
	assert.Error(t, b.SetDocumentStatus(BookingDocumentsOwner, 0, DocumentStatus(5)))
	assert.ErrorIs(t, b.SetDocumentStatus(BookingDocumentsOwner, 4, StatusVerified), errors.ErrDocumentNotFound)
}

func TestNormalizeFieldValue(t *testing.T) {
	visa := FieldsForType(DocVisa)[0]
	assert.Equal(t, "AB12CD", NormalizeFieldValue(visa, "ab12cd"))

	series := FieldsForType(DocPassport)[0]
	assert.Equal(t, "12 34", NormalizeFieldValue(series, "12 34"))

	issuedBy := FieldsForType(DocPassport)[3]
	assert.Equal(t, "овд", NormalizeFieldValue(issuedBy, "овд"))
}
