// Package docs Travel Agency API.
//
// Сервис оформления туристических заявок. Хранит клиентов, туры и заявки,
// ведёт перечень обязательных документов каждого туриста и заявки в целом,
// считает стоимость и сохраняет состояние в снапшот (файл или redis).
//
// Основные возможности:
// - Анкеты клиентов с проверкой ФИО и адресов
// - Туры и способы проезда
// - Заявки: туристы, животные, класс проезда, статус
// - Документы: заполнение полей, проверка, предупреждения
// - Сохранение, загрузка, экспорт и импорт снапшота
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
