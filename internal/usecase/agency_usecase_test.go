package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travel-agency/internal/pkg/errors"
	"github.com/travel-agency/internal/usecase"
	"github.com/travel-agency/internal/usecase/dto"
)

// MockSnapshotRepository is a mock of SnapshotRepository
type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Save(ctx context.Context, data []byte) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockSnapshotRepository) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func clientRequest() dto.ClientRequest {
	return dto.ClientRequest{
		LastName:   "Петров",
		FirstName:  "Пётр",
		MiddleName: "Петрович",
		Phone:      "+7 900 000-00-00",
		Email:      "petrov@mail.ru",
		RegistrationAddress: dto.AddressRequest{
			Region:     "Московская",
			City:       "Москва",
			Street:     "Тверская",
			House:      "7",
			PostalCode: "125009",
		},
		SameAddress: true,
	}
}

func tourRequest(domestic bool) dto.TourRequest {
	return dto.TourRequest{
		Name:         "Байкал",
		Country:      "Россия",
		TourType:     "Экскурсионный",
		StartDate:    "2030-07-01",
		DurationDays: 10,
		BasePrice:    20000,
		IsDomestic:   domestic,
	}
}

func setupBooking(t *testing.T, uc *usecase.AgencyUseCase) *dto.BookingResponse {
	t.Helper()
	client, err := uc.CreateClient(clientRequest())
	require.NoError(t, err)
	tour, err := uc.CreateTour(tourRequest(true))
	require.NoError(t, err)
	b, err := uc.CreateBooking(dto.CreateBookingRequest{ClientID: client.ID, TourID: tour.ID})
	require.NoError(t, err)
	return b
}

func TestAgencyUseCase_Clients(t *testing.T) {
	uc := usecase.NewAgencyUseCase(&MockSnapshotRepository{}, zap.NewNop())

	t.Run("create copies registration address", func(t *testing.T) {
		c, err := uc.CreateClient(clientRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, "Петров Пётр Петрович", c.FullName)
		assert.Equal(t, c.RegistrationAddress, c.ActualAddress)
	})

	t.Run("invalid name is rejected", func(t *testing.T) {
		req := clientRequest()
		req.LastName = "Petrov"
		_, err := uc.CreateClient(req)
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})

	t.Run("search", func(t *testing.T) {
		assert.Len(t, uc.ListClients("ПЕТРОВ"), 1)
		assert.Len(t, uc.ListClients("900 000"), 1)
		assert.Empty(t, uc.ListClients("сидоров"))
		assert.Len(t, uc.ListClients(""), 1)
	})

	t.Run("update", func(t *testing.T) {
		req := clientRequest()
		req.Phone = "+7 911 111-11-11"
		c, err := uc.UpdateClient(1, req)
		require.NoError(t, err)
		assert.Equal(t, "+7 911 111-11-11", c.Phone)

		_, err = uc.UpdateClient(42, req)
		assert.ErrorIs(t, err, errors.ErrClientNotFound)
	})

	t.Run("bad date", func(t *testing.T) {
		req := clientRequest()
		req.DateOfBirth = "01.01.1990"
		_, err := uc.CreateClient(req)
		assert.ErrorIs(t, err, errors.ErrInvalidRequest)
	})
}

func TestAgencyUseCase_DeleteReferenced(t *testing.T) {
	uc := usecase.NewAgencyUseCase(&MockSnapshotRepository{}, zap.NewNop())
	b := setupBooking(t, uc)

	assert.ErrorIs(t, uc.DeleteClient(b.ClientID), errors.ErrReferenced)
	assert.ErrorIs(t, uc.DeleteTour(b.TourID), errors.ErrReferenced)

	history, err := uc.SalesHistory(b.ClientID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, b.ID, history[0].ID)

	require.NoError(t, uc.DeleteBooking(b.ID))
	assert.NoError(t, uc.DeleteClient(b.ClientID))
	assert.NoError(t, uc.DeleteTour(b.TourID))
	assert.ErrorIs(t, uc.DeleteBooking(b.ID), errors.ErrBookingNotFound)
}

func TestAgencyUseCase_Travelers(t *testing.T) {
	uc := usecase.NewAgencyUseCase(&MockSnapshotRepository{}, zap.NewNop())
	b := setupBooking(t, uc)

	resp, err := uc.AddTraveler(b.ID, dto.TravelerRequest{LastName: "Петров", FirstName: "Пётр"})
	require.NoError(t, err)
	require.Len(t, resp.TravelerList, 1)
	assert.Equal(t, "adult", resp.TravelerList[0].Kind)

	t.Run("child without date of birth", func(t *testing.T) {
		_, err := uc.AddTraveler(b.ID, dto.TravelerRequest{IsChild: true, LastName: "Петрова", FirstName: "Анна"})
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})

	t.Run("child", func(t *testing.T) {
		dob := time.Now().AddDate(-7, 0, 0).Format(dto.DateLayout)
		resp, err := uc.AddTraveler(b.ID, dto.TravelerRequest{
			IsChild:     true,
			LastName:    "Петрова",
			FirstName:   "Анна",
			DateOfBirth: dob,
			HasBenefit:  true,
		})
		require.NoError(t, err)
		require.Len(t, resp.TravelerList, 2)
		child := resp.TravelerList[1]
		assert.Equal(t, 7, child.Age)
		assert.True(t, child.HasBenefit)
		assert.Len(t, child.Documents, 3)
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		off := false
		resp, err := uc.UpdateTraveler(b.ID, 1, dto.UpdateTravelerRequest{FirstName: "Мария", HasBenefit: &off})
		require.NoError(t, err)
		child := resp.TravelerList[1]
		assert.Equal(t, "Петрова", child.LastName)
		assert.Equal(t, "Мария", child.FirstName)
		assert.False(t, child.HasBenefit)
	})

	t.Run("adult has no date of birth", func(t *testing.T) {
		_, err := uc.UpdateTraveler(b.ID, 0, dto.UpdateTravelerRequest{DateOfBirth: "2020-01-01"})
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)
	})

	t.Run("cost", func(t *testing.T) {
		cost, err := uc.CostSummary(b.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, cost.Adults)
		assert.Equal(t, 1, cost.Children)
		assert.InDelta(t, 30000, cost.Total, 0.001)
		assert.Equal(t, "30000.00", cost.Formatted)
	})

	t.Run("remove out of range", func(t *testing.T) {
		_, err := uc.RemoveTraveler(b.ID, 5)
		assert.ErrorIs(t, err, errors.ErrTravelerNotFound)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := uc.RemoveTraveler(999, 0)
		assert.ErrorIs(t, err, errors.ErrBookingNotFound)
	})
}

func TestAgencyUseCase_AnimalsAndTravel(t *testing.T) {
	uc := usecase.NewAgencyUseCase(&MockSnapshotRepository{}, zap.NewNop())
	b := setupBooking(t, uc)

	resp, err := uc.AddAnimal(b.ID, dto.AnimalRequest{Type: "Кошка", Weight: 4, Transport: "Переноска"})
	require.NoError(t, err)
	require.Len(t, resp.Animals, 1)

	var hasVet bool
	for _, d := range resp.Documents {
		if d.Type == "Veterinary Passport" {
			hasVet = d.Required
		}
	}
	assert.True(t, hasVet)

	resp, err = uc.SetTravel(b.ID, dto.TravelRequest{TravelMode: "Train", TravelClass: "Business"})
	require.NoError(t, err)
	assert.Equal(t, "Train", resp.TravelMode)
	assert.Equal(t, "Compartment", resp.TravelClass)

	resp, err = uc.RemoveAnimal(b.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Animals)
}

func TestAgencyUseCase_DocumentsAndSubmit(t *testing.T) {
	repo := &MockSnapshotRepository{}
	uc := usecase.NewAgencyUseCase(repo, zap.NewNop())
	b := setupBooking(t, uc)
	ctx := context.Background()

	resp, err := uc.AddTraveler(b.ID, dto.TravelerRequest{LastName: "Петров", FirstName: "Пётр"})
	require.NoError(t, err)

	t.Run("not ready", func(t *testing.T) {
		_, err := uc.SubmitBooking(ctx, b.ID)
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)

		warnings, err := uc.Warnings(b.ID)
		require.NoError(t, err)
		assert.False(t, warnings.Complete)
		assert.NotEmpty(t, warnings.DocumentWarnings)
	})

	t.Run("fields update status", func(t *testing.T) {
		resp, err := uc.SetDocumentFields(b.ID, 0, 0, dto.DocumentFieldsRequest{Fields: map[string]string{"series": "1234"}})
		require.NoError(t, err)
		assert.Equal(t, "Absent", resp.TravelerList[0].Documents[0].Status)

		doc, err := uc.GetDocument(b.ID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "1234", doc.Fields["series"])

		_, err = uc.VerifyDocument(b.ID, 0, 0)
		assert.ErrorIs(t, err, errors.ErrValidationFailed)
	})

	t.Run("required document cannot be removed", func(t *testing.T) {
		_, err := uc.RemoveDocument(b.ID, 0, 0)
		assert.ErrorIs(t, err, errors.ErrInvalidArgument)

		resp, err := uc.AddDocument(b.ID, 0, dto.AddDocumentRequest{Type: 5})
		require.NoError(t, err)
		docs := resp.TravelerList[0].Documents
		require.Len(t, docs, 3)
		assert.False(t, docs[2].Required)

		_, err = uc.RemoveDocument(b.ID, 0, 2)
		assert.NoError(t, err)
	})

	t.Run("submit saves", func(t *testing.T) {
		for i := range resp.TravelerList[0].Documents {
			_, err := uc.SetDocumentStatus(b.ID, 0, i, dto.DocumentStatusRequest{Status: "Verified"})
			require.NoError(t, err)
		}
		for i := range resp.Documents {
			_, err := uc.SetDocumentStatus(b.ID, -1, i, dto.DocumentStatusRequest{Status: "Verified"})
			require.NoError(t, err)
		}

		repo.On("Save", ctx, mock.AnythingOfType("[]uint8")).Return(nil).Once()

		snap, err := uc.SubmitBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, snap.Bookings)
		assert.False(t, uc.Dirty())
		repo.AssertExpectations(t)
	})
}

func TestAgencyUseCase_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := &MockSnapshotRepository{}
	uc := usecase.NewAgencyUseCase(repo, zap.NewNop())
	b := setupBooking(t, uc)
	_, err := uc.AddTraveler(b.ID, dto.TravelerRequest{LastName: "Петров", FirstName: "Пётр"})
	require.NoError(t, err)

	var stored []byte
	repo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).([]byte)
	}).Return(nil).Once()

	saved, err := uc.SaveIfChanged(ctx)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = uc.SaveIfChanged(ctx)
	require.NoError(t, err)
	assert.False(t, saved)
	repo.AssertNumberOfCalls(t, "Save", 1)

	other := &MockSnapshotRepository{}
	other.On("Load", ctx).Return(stored, nil).Once()
	restored := usecase.NewAgencyUseCase(other, zap.NewNop())

	snap, err := restored.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Clients)
	assert.Equal(t, 1, snap.Tours)
	assert.Equal(t, 1, snap.Bookings)
	assert.False(t, restored.Dirty())

	got, err := restored.GetBooking(b.ID)
	require.NoError(t, err)
	require.Len(t, got.TravelerList, 1)
	assert.Equal(t, "Петров Пётр", got.TravelerList[0].FullName)

	c, err := restored.CreateClient(clientRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), c.ID)
	assert.True(t, restored.Dirty())
}

func TestAgencyUseCase_LoadFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := &MockSnapshotRepository{}
	uc := usecase.NewAgencyUseCase(repo, zap.NewNop())
	setupBooking(t, uc)

	repo.On("Load", ctx).Return([]byte(`{"clients": 5}`), nil).Once()
	_, err := uc.Load(ctx)
	assert.ErrorIs(t, err, errors.ErrSnapshotMalformed)
	assert.Len(t, uc.ListClients(""), 1)
	assert.Len(t, uc.ListBookings(), 1)

	repo.On("Load", ctx).Return(nil, errors.ErrSnapshotNotFound).Once()
	_, err = uc.Load(ctx)
	assert.ErrorIs(t, err, errors.ErrSnapshotNotFound)
	assert.Len(t, uc.ListTours(), 1)
}

func TestAgencyUseCase_SaveFailureStaysDirty(t *testing.T) {
	ctx := context.Background()
	repo := &MockSnapshotRepository{}
	uc := usecase.NewAgencyUseCase(repo, zap.NewNop())
	setupBooking(t, uc)

	repo.On("Save", ctx, mock.Anything).Return(errors.ErrSnapshotIO).Once()

	saved, err := uc.SaveIfChanged(ctx)
	assert.ErrorIs(t, err, errors.ErrSnapshotIO)
	assert.False(t, saved)
	assert.True(t, uc.Dirty())
}

func TestAgencyUseCase_ImportExport(t *testing.T) {
	uc := usecase.NewAgencyUseCase(&MockSnapshotRepository{}, zap.NewNop())
	setupBooking(t, uc)

	data, err := uc.Export()
	require.NoError(t, err)

	target := usecase.NewAgencyUseCase(&MockSnapshotRepository{}, zap.NewNop())
	snap, err := target.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Bookings)
	assert.True(t, target.Dirty())

	assert.Len(t, target.DocumentTypes(), 13)
}
