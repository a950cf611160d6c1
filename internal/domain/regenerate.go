package domain

// documentSnapshot - сохранённые данные документа на время пересборки списка
type documentSnapshot struct {
	status DocumentStatus
	fields map[string]interface{}
}

// regenerateDocuments строит новый список: сначала обязательные типы (с перенесёнными
// статусом и полями, если документ уже был), затем прежние необязательные документы
// в порядке первого появления. Для повторяющихся типов побеждает последняя запись.
func regenerateDocuments(existing []*Document, required []DocumentType) []*Document {
	snapshot := make(map[DocumentType]documentSnapshot, len(existing))
	order := make([]DocumentType, 0, len(existing))
	for _, d := range existing {
		if _, seen := snapshot[d.Type]; !seen {
			order = append(order, d.Type)
		}
		snapshot[d.Type] = documentSnapshot{status: d.Status, fields: d.Fields}
	}

	out := make([]*Document, 0, len(required)+len(order))
	requiredSet := make(map[DocumentType]struct{}, len(required))
	for _, docType := range required {
		if _, dup := requiredSet[docType]; dup {
			continue
		}
		requiredSet[docType] = struct{}{}

		doc := NewDocument(docType)
		if snap, ok := snapshot[docType]; ok {
			doc.Status = snap.status
			doc.Fields = copyFields(snap.fields)
		}
		out = append(out, doc)
	}

	for _, docType := range order {
		if _, ok := requiredSet[docType]; ok {
			continue
		}
		snap := snapshot[docType]
		out = append(out, &Document{Type: docType, Status: snap.status, Fields: copyFields(snap.fields)})
	}
	return out
}
