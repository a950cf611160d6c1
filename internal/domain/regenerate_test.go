package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegenerateDocuments_RequiredFirstThenLeftovers(t *testing.T) {
	existing := []*Document{
		{Type: DocVisa, Status: StatusAvailable, Fields: map[string]interface{}{"visaNumber": "OLD123"}},
		{Type: DocSNILS, Status: StatusVerified, Fields: map[string]interface{}{"snils": "123-456-789 00"}},
		{Type: DocVisa, Status: StatusVerified, Fields: map[string]interface{}{"visaNumber": "NEW123"}},
	}

	out := regenerateDocuments(existing, []DocumentType{DocPassport, DocSNILS})

	require.Len(t, out, 3)
	assert.Equal(t, []DocumentType{DocPassport, DocSNILS, DocVisa}, documentTypes(out))
	assert.Equal(t, StatusAbsent, out[0].Status)
	assert.Empty(t, out[0].Fields)
	assert.Equal(t, StatusVerified, out[1].Status)
	assert.Equal(t, "123-456-789 00", out[1].Field("snils"))
	assert.Equal(t, StatusVerified, out[2].Status, "last duplicate wins")
	assert.Equal(t, "NEW123", out[2].Field("visaNumber"))
}

func TestRegenerateDocuments_CopiesFields(t *testing.T) {
	src := &Document{Type: DocPassport, Status: StatusAvailable, Fields: map[string]interface{}{"series": "1234"}}
	out := regenerateDocuments([]*Document{src}, []DocumentType{DocPassport})

	out[0].SetField("series", "9999")
	assert.Equal(t, "1234", src.Field("series"))
}

func TestRegenerateDocuments_DuplicateRequiredTypes(t *testing.T) {
	out := regenerateDocuments(nil, []DocumentType{DocTickets, DocTickets})
	assert.Equal(t, []DocumentType{DocTickets}, documentTypes(out))
}

func TestRegenerateDocuments_Idempotent(t *testing.T) {
	existing := []*Document{
		{Type: DocINN, Status: StatusAvailable, Fields: map[string]interface{}{"inn": "123456789012"}},
	}
	required := []DocumentType{DocPassport, DocOMSPolicy}

	first := regenerateDocuments(existing, required)
	second := regenerateDocuments(first, required)

	assert.Equal(t, first, second)
}
