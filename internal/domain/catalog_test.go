package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travel-agency/internal/pkg/errors"
)

func TestFieldsForType_EveryTypeHasFields(t *testing.T) {
	for _, docType := range AllDocumentTypes() {
		assert.NotEmpty(t, FieldsForType(docType), docType.String())
	}
	assert.Empty(t, FieldsForType(DocumentType(99)))
}

func TestFieldsForType_OrderAndCopy(t *testing.T) {
	defs := FieldsForType(DocPassport)
	require.Len(t, defs, 5)
	keys := make([]string, 0, len(defs))
	for _, d := range defs {
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []string{"series", "number", "issueDate", "issuedBy", "issuerCode"}, keys)

	defs[0].Key = "changed"
	assert.Equal(t, "series", FieldsForType(DocPassport)[0].Key)
}

func TestIsMinimumFilled(t *testing.T) {
	tests := []struct {
		name     string
		docType  DocumentType
		fields   map[string]interface{}
		expected bool
	}{
		{
			name:     "passport filled",
			docType:  DocPassport,
			fields:   map[string]interface{}{"series": "1234", "number": "567890"},
			expected: true,
		},
		{
			name:     "passport short number",
			docType:  DocPassport,
			fields:   map[string]interface{}{"series": "1234", "number": "56789"},
			expected: false,
		},
		{
			name:     "passport values are trimmed",
			docType:  DocPassport,
			fields:   map[string]interface{}{"series": " 1234 ", "number": "567890 "},
			expected: true,
		},
		{
			name:     "oms policy number stored as number",
			docType:  DocOMSPolicy,
			fields:   map[string]interface{}{"number": float64(1234567890123456)},
			expected: true,
		},
		{
			name:     "birth certificate",
			docType:  DocBirthCertificate,
			fields:   map[string]interface{}{"series": "IV-АР", "number": "123456"},
			expected: true,
		},
		{
			name:     "inn has no required fields",
			docType:  DocINN,
			fields:   map[string]interface{}{},
			expected: true,
		},
		{
			name:     "tickets missing transport type",
			docType:  DocTickets,
			fields:   map[string]interface{}{"ticketNumber": "SU-123456"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Document{Type: tt.docType, Fields: tt.fields}
			assert.Equal(t, tt.expected, IsMinimumFilled(d))
		})
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name        string
		doc         *Document
		wantField   string
		wantMessage string
	}{
		{
			name:        "required field missing",
			doc:         &Document{Type: DocPassport, Fields: map[string]interface{}{"number": "567890"}},
			wantField:   "series",
			wantMessage: "Field 'Series' is required",
		},
		{
			name: "optional field with bad format",
			doc: &Document{Type: DocPassport, Fields: map[string]interface{}{
				"series": "1234", "number": "567890", "issuerCode": "12-345",
			}},
			wantField:   "issuerCode",
			wantMessage: "Field 'Issuer code' has invalid format",
		},
		{
			name:        "visa lowercase",
			doc:         &Document{Type: DocVisa, Fields: map[string]interface{}{"visaNumber": "a1b2c3"}},
			wantField:   "visaNumber",
			wantMessage: "Field 'Visa number' has invalid format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrValidationFailed)

			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessage, appErr.Message)
			assert.Equal(t, tt.wantField, appErr.Details["field"])
		})
	}

	ok := &Document{Type: DocPassport, Fields: map[string]interface{}{
		"series": "1234", "number": "567890", "issuerCode": "770-001",
	}}
	assert.NoError(t, ok.Validate())
}
