package usecase

import (
	"context"
	"errors"
	"strconv"

	"doctor-listing/internal/converter"
	"doctor-listing/internal/delivery/dto"
	"doctor-listing/internal/domain/listing"
	"doctor-listing/internal/domain/repository"
	"doctor-listing/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrDoctorsUnavailable = errors.New("doctor listing unavailable")
	ErrUnknownFilterEvent = errors.New("unknown filter event")
	ErrSuggestionNotFound = errors.New("suggested doctor not found")
)

type DoctorListingUsecase interface {
	ListDoctors(ctx context.Context, rawQuery string) (*dto.DoctorListResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error)
	GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	ApplyFilterEvent(ctx context.Context, req *dto.FilterEventRequest) (*dto.FilterEventResponse, error)
}

type doctorListingUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	storeSource string
}

func NewDoctorListingUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	storeSource string,
) DoctorListingUsecase {
	return &doctorListingUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		storeSource: storeSource,
	}
}

func (u *doctorListingUsecase) ListDoctors(ctx context.Context, rawQuery string) (*dto.DoctorListResponse, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	session := listing.NewSession(store, rawQuery, nil)
	response := toListResponse(session)

	metrics.ListingRequests.WithLabelValues(metrics.SortLabel(session.Filter().SortBy)).Inc()
	metrics.ListingResultSize.Observe(float64(response.Total))

	return response, nil
}

func (u *doctorListingUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	doctor, ok := store.FindByID(doctorID)
	if !ok {
		u.log.Warnf("Failed to find doctor: %+v", doctorID)
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(&doctor), nil
}

func (u *doctorListingUsecase) Suggest(ctx context.Context, query string) (*dto.SuggestionListResponse, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	suggestions := listing.Suggest(store.Records(), query)
	visible := listing.SuggestionsVisible(query, suggestions)
	metrics.SuggestionRequests.WithLabelValues(strconv.FormatBool(visible)).Inc()

	return &dto.SuggestionListResponse{
		Suggestions: converter.DoctorsToSuggestions(suggestions),
		Visible:     visible,
	}, nil
}

func (u *doctorListingUsecase) GetSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	catalog := store.Catalog()
	return &dto.SpecialtyListResponse{
		Specialties: catalog,
		Total:       len(catalog),
	}, nil
}

func (u *doctorListingUsecase) ApplyFilterEvent(ctx context.Context, req *dto.FilterEventRequest) (*dto.FilterEventResponse, error) {
	store, err := u.loadStore(ctx)
	if err != nil {
		return nil, err
	}

	// The page replaces its location with whatever the session writes last
	navigation := dto.NavigationResponse{Replace: true, PreserveScroll: true}
	session := listing.NewSession(store, req.Query, listing.NavigatorFunc(func(query string) {
		navigation.Query = query
	}))

	if err := session.Apply(listing.Event{Type: listing.EventType(req.Type), Value: req.Value}); err != nil {
		u.log.Warnf("Failed to apply filter event %s: %+v", req.Type, err)
		switch {
		case errors.Is(err, listing.ErrSuggestionNotFound):
			return nil, ErrSuggestionNotFound
		case errors.Is(err, listing.ErrUnknownEvent):
			return nil, ErrUnknownFilterEvent
		default:
			return nil, err
		}
	}

	metrics.FilterEvents.WithLabelValues(req.Type).Inc()

	suggestions := session.Suggestions()
	return &dto.FilterEventResponse{
		Listing: *toListResponse(session),
		Suggestions: dto.SuggestionListResponse{
			Suggestions: converter.DoctorsToSuggestions(suggestions),
			Visible:     session.SuggestionsVisible(),
		},
		Navigation: navigation,
	}, nil
}

// loadStore opens the record store for one page session
func (u *doctorListingUsecase) loadStore(ctx context.Context) (*listing.Store, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors from %s: %+v", u.storeSource, err)
		metrics.StoreLoadFailures.WithLabelValues(u.storeSource).Inc()
		return nil, ErrDoctorsUnavailable
	}
	return listing.NewStore(doctors), nil
}

func toListResponse(session *listing.Session) *dto.DoctorListResponse {
	view := session.View()
	return &dto.DoctorListResponse{
		Doctors:          converter.DoctorsToResponses(view),
		Total:            len(view),
		Filters:          converter.FilterToResponse(session.Filter()),
		Query:            session.Query(),
		SpecialtyCatalog: session.Catalog(),
	}
}
