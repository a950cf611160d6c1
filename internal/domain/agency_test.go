package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/travel-agency/internal/pkg/errors"
)

type AgencyTestSuite struct {
	suite.Suite
	agency *Agency
	client *Client
	tour   *Tour
}

func (s *AgencyTestSuite) SetupTest() {
	s.agency = NewAgency()

	client, err := s.agency.AddClient(validClientInput())
	s.Require().NoError(err)
	s.client = client

	tour, err := s.agency.AddTour(tourInput(false, true))
	s.Require().NoError(err)
	s.tour = tour
}

func TestAgencySuite(t *testing.T) {
	suite.Run(t, new(AgencyTestSuite))
}

func (s *AgencyTestSuite) TestIDsAreSequentialPerKind() {
	s.Equal(int64(1), s.client.ID)
	s.Equal(int64(1), s.tour.ID)

	second := validClientInput()
	second.LastName = "Петров"
	c, err := s.agency.AddClient(second)
	s.Require().NoError(err)
	s.Equal(int64(2), c.ID)

	b, err := s.agency.CreateBooking(s.client.ID, s.tour.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), b.ID())
}

func (s *AgencyTestSuite) TestAddClient_InvalidDoesNotConsumeID() {
	bad := validClientInput()
	bad.FirstName = "Ivan"
	_, err := s.agency.AddClient(bad)
	s.Require().Error(err)
	s.ErrorIs(err, errors.ErrValidationFailed)

	appErr, ok := errors.As(err)
	s.Require().True(ok)
	s.Contains(appErr.Message, "First name")

	s.Equal(int64(2), s.agency.IDs().Peek(KindClient))
	s.Len(s.agency.Clients(), 1)
}

func (s *AgencyTestSuite) TestAddClient_RequiresContacts() {
	in := validClientInput()
	in.Phone = " "
	_, err := s.agency.AddClient(in)
	s.ErrorIs(err, errors.ErrValidationFailed)

	in = validClientInput()
	in.ActualAddress.PostalCode = "12345"
	_, err = s.agency.AddClient(in)
	s.Require().Error(err)
	appErr, _ := errors.As(err)
	s.Equal("postalCode", appErr.Details["field"])
}

func (s *AgencyTestSuite) TestEditClient() {
	in := validClientInput()
	in.Comments = "Постоянный клиент"
	s.Require().NoError(s.agency.EditClient(s.client.ID, in))
	s.Equal("Постоянный клиент", s.agency.ClientByID(s.client.ID).Comments)

	in.LastName = "Ivanov"
	s.Error(s.agency.EditClient(s.client.ID, in))
	s.Equal("Иванов", s.agency.ClientByID(s.client.ID).LastName)

	s.ErrorIs(s.agency.EditClient(42, validClientInput()), errors.ErrClientNotFound)
}

func (s *AgencyTestSuite) TestDeleteClient_Referenced() {
	b, err := s.agency.CreateBooking(s.client.ID, s.tour.ID)
	s.Require().NoError(err)

	err = s.agency.DeleteClient(s.client.ID)
	s.ErrorIs(err, errors.ErrReferenced)
	s.Len(s.agency.Clients(), 1)

	s.Require().NoError(s.agency.DeleteBooking(b.ID()))
	s.Require().NoError(s.agency.DeleteClient(s.client.ID))
	s.Empty(s.agency.Clients())
	s.ErrorIs(s.agency.DeleteClient(s.client.ID), errors.ErrClientNotFound)
}

func (s *AgencyTestSuite) TestDeleteTour_Referenced() {
	_, err := s.agency.CreateBooking(s.client.ID, s.tour.ID)
	s.Require().NoError(err)

	s.ErrorIs(s.agency.DeleteTour(s.tour.ID), errors.ErrReferenced)
	s.ErrorIs(s.agency.DeleteTour(99), errors.ErrTourNotFound)
	s.ErrorIs(s.agency.DeleteBooking(99), errors.ErrBookingNotFound)
}

func (s *AgencyTestSuite) TestCreateBooking_UnknownReferences() {
	_, err := s.agency.CreateBooking(99, s.tour.ID)
	s.ErrorIs(err, errors.ErrClientNotFound)
	_, err = s.agency.CreateBooking(s.client.ID, 99)
	s.ErrorIs(err, errors.ErrTourNotFound)
	s.Empty(s.agency.Bookings())
}

func (s *AgencyTestSuite) TestSearchClients() {
	second := validClientInput()
	second.LastName = "Петрова"
	second.FirstName = "Анна"
	second.MiddleName = ""
	second.Phone = "+7 912 000-00-00"
	second.Email = "Anna@Example.com"
	_, err := s.agency.AddClient(second)
	s.Require().NoError(err)

	s.Len(s.agency.SearchClients("ИВАН"), 1)
	s.Len(s.agency.SearchClients("912"), 1)
	s.Len(s.agency.SearchClients("example"), 1)
	s.Len(s.agency.SearchClients("mail"), 1)
	s.Empty(s.agency.SearchClients("  "))
	s.Empty(s.agency.SearchClients("Сидоров"))
}

func (s *AgencyTestSuite) TestSalesHistory() {
	second := validClientInput()
	second.LastName = "Петров"
	other, err := s.agency.AddClient(second)
	s.Require().NoError(err)

	_, err = s.agency.CreateBooking(s.client.ID, s.tour.ID)
	s.Require().NoError(err)
	_, err = s.agency.CreateBooking(other.ID, s.tour.ID)
	s.Require().NoError(err)
	_, err = s.agency.CreateBooking(s.client.ID, s.tour.ID)
	s.Require().NoError(err)

	history := s.agency.SalesHistory(s.client.ID)
	s.Require().Len(history, 2)
	s.Equal(int64(1), history[0].ID())
	s.Equal(int64(3), history[1].ID())
}

func (s *AgencyTestSuite) TestEditTour_RegeneratesBookings() {
	b, err := s.agency.CreateBooking(s.client.ID, s.tour.ID)
	s.Require().NoError(err)
	_, err = b.AddAdult("Петров", "Пётр", "")
	s.Require().NoError(err)
	s.Equal([]DocumentType{DocInternationalPassport, DocVisa}, documentTypes(b.Travelers()[0].Documents))

	domestic := tourInput(true, false)
	domestic.TravelModes = []string{ModeTrain}
	s.Require().NoError(s.agency.EditTour(s.tour.ID, domestic))

	s.Equal([]DocumentType{DocPassport, DocOMSPolicy, DocInternationalPassport, DocVisa},
		documentTypes(b.Travelers()[0].Documents))
	s.Equal(ModeTrain, b.TravelMode())
	s.Equal("Compartment", b.TravelClass())

	bad := domestic
	bad.DurationDays = 0
	s.ErrorIs(s.agency.EditTour(s.tour.ID, bad), errors.ErrInvalidArgument)
	s.ErrorIs(s.agency.EditTour(99, domestic), errors.ErrTourNotFound)
}

func (s *AgencyTestSuite) TestRestoreReseedsIDs() {
	a := NewAgency()
	c, err := a.RestoreClient(10, validClientInput())
	s.Require().NoError(err)
	_, err = a.RestoreTour(7, tourInput(true, false))
	s.Require().NoError(err)
	_, err = a.RestoreBooking(3, c.ID, 7)
	s.Require().NoError(err)

	next, err := a.AddClient(validClientInput())
	s.Require().NoError(err)
	s.Equal(int64(11), next.ID)
	s.Equal(int64(8), a.IDs().Peek(KindTour))
	s.Equal(int64(4), a.IDs().Peek(KindBooking))

	_, err = a.RestoreClient(10, validClientInput())
	s.ErrorIs(err, errors.ErrInvalidArgument)
	_, err = a.RestoreBooking(0, 99, 7)
	s.ErrorIs(err, errors.ErrClientNotFound)
}

func TestIDAllocator(t *testing.T) {
	ids := NewIDAllocator()
	assert.Equal(t, int64(1), ids.Next(KindClient))
	assert.Equal(t, int64(2), ids.Next(KindClient))
	assert.Equal(t, int64(1), ids.Next(KindTour))

	ids.Observe(KindBooking, 5)
	ids.Observe(KindBooking, 2)
	assert.Equal(t, int64(6), ids.Next(KindBooking))
}

func TestSplitLegacyFullName(t *testing.T) {
	last, first, middle := SplitLegacyFullName("  Иванов  Иван Иванович оглы ")
	assert.Equal(t, "Иванов", last)
	assert.Equal(t, "Иван", first)
	assert.Equal(t, "Иванович оглы", middle)

	last, first, middle = SplitLegacyFullName("Иванов")
	assert.Equal(t, "Иванов", last)
	assert.Empty(t, first)
	assert.Empty(t, middle)
}

func TestAddress_IsEmpty(t *testing.T) {
	assert.True(t, Address{City: "  "}.IsEmpty())
	assert.False(t, validAddress().IsEmpty())
	require.NoError(t, validAddress().Validate())
}
