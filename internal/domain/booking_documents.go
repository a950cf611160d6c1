package domain

import "strings"

// BookingDocumentsOwner - индекс владельца для документов самой заявки
const BookingDocumentsOwner = -1

// documentList возвращает список документов владельца: туриста по индексу
// или заявки при owner < 0
func (b *Booking) documentList(owner int) (*[]*Document, error) {
	if owner < 0 {
		return &b.documents, nil
	}
	t, err := b.Traveler(owner)
	if err != nil {
		return nil, err
	}
	return &t.Documents, nil
}

func (b *Booking) requiredFor(owner int) []DocumentType {
	if owner < 0 {
		return RequiredBookingDocuments(b)
	}
	return RequiredPersonalDocuments(b, b.travelers[owner])
}

func (b *Booking) Document(owner, index int) (*Document, error) {
	docs, err := b.documentList(owner)
	if err != nil {
		return nil, err
	}
	return documentAt(*docs, index)
}

// DocumentField - значение поля документа в текстовом виде
func (b *Booking) DocumentField(owner, index int, key string) (string, error) {
	d, err := b.Document(owner, index)
	if err != nil {
		return "", err
	}
	return d.Field(key), nil
}

// SetDocumentField записывает значение поля и пересчитывает статус:
// без минимального заполнения документ Absent, иначе Available (Verified сохраняется)
func (b *Booking) SetDocumentField(owner, index int, key, value string) error {
	d, err := b.Document(owner, index)
	if err != nil {
		return err
	}
	if def, ok := fieldDefinition(d.Type, key); ok {
		value = NormalizeFieldValue(def, value)
	}
	d.SetField(key, value)
	refreshDocumentStatus(d)
	return nil
}

func (b *Booking) SetDocumentStatus(owner, index int, status DocumentStatus) error {
	if !status.Valid() {
		return invalidArgument("unknown document status %d", int(status))
	}
	d, err := b.Document(owner, index)
	if err != nil {
		return err
	}
	d.Status = status
	return nil
}

// VerifyDocument - отметка "проверен" только для документа, прошедшего валидацию полей
func (b *Booking) VerifyDocument(owner, index int) error {
	d, err := b.Document(owner, index)
	if err != nil {
		return err
	}
	if err := ValidateDocument(d); err != nil {
		return err
	}
	d.Status = StatusVerified
	return nil
}

// AddDocument - дополнительный документ; один документ каждого типа на владельца
func (b *Booking) AddDocument(owner int, docType DocumentType) (*Document, error) {
	if !docType.Valid() {
		return nil, invalidArgument("unknown document type %d", int(docType))
	}
	docs, err := b.documentList(owner)
	if err != nil {
		return nil, err
	}
	for _, d := range *docs {
		if d.Type == docType {
			return nil, invalidArgument("document %s is already added", docType)
		}
	}
	d := NewDocument(docType)
	*docs = append(*docs, d)
	return d, nil
}

// RemoveDocument - обязательный документ удалить нельзя
func (b *Booking) RemoveDocument(owner, index int) error {
	docs, err := b.documentList(owner)
	if err != nil {
		return err
	}
	d, err := documentAt(*docs, index)
	if err != nil {
		return err
	}
	for _, required := range b.requiredFor(owner) {
		if required == d.Type {
			return invalidArgument("required document %s cannot be removed", d.Type)
		}
	}
	*docs = append((*docs)[:index], (*docs)[index+1:]...)
	return nil
}

// NormalizeFieldValue приводит ввод к формату шаблона: латиница в верхний регистр,
// пробелы из 16-значного номера полиса удаляются
func NormalizeFieldValue(def FieldDefinition, value string) string {
	if def.Pattern == nil {
		return value
	}
	pattern := def.Pattern.String()
	if strings.Contains(pattern, "[A-Z") {
		return strings.ToUpper(value)
	}
	if pattern == `^\d{16}$` {
		return strings.ReplaceAll(value, " ", "")
	}
	return value
}

func fieldDefinition(docType DocumentType, key string) (FieldDefinition, bool) {
	for _, def := range documentCatalog[docType] {
		if def.Key == key {
			return def, true
		}
	}
	return FieldDefinition{}, false
}

func refreshDocumentStatus(d *Document) {
	if !IsMinimumFilled(d) {
		d.Status = StatusAbsent
	} else if d.Status != StatusVerified {
		d.Status = StatusAvailable
	}
}
