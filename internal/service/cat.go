package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/cat_finder_system/internal/imaging"
	"github.com/shenikar/cat_finder_system/internal/models"
	"github.com/shenikar/cat_finder_system/internal/notify"
	"github.com/sirupsen/logrus"
)

// CatFilter - параметры выборки котов. Гео-фильтр применяется только
// когда заданы обе координаты.
type CatFilter struct {
	Lat      *float64
	Lng      *float64
	RadiusKm float64
	Page     int
	Limit    int
}

// CatRepository определяет контракт для работы с бд котов
type CatRepository interface {
	Create(ctx context.Context, cat *models.Cat) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Cat, error)
	List(ctx context.Context, filter CatFilter) ([]*models.Cat, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Cat, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
	RepairLastSeen(ctx context.Context) (int64, error)
	GetCatFromCache(ctx context.Context, id uuid.UUID) (*models.Cat, error)
	SetCatCache(ctx context.Context, cat *models.Cat) error
	InvalidateCatCache(ctx context.Context, id uuid.UUID) error
}

// ReportRepository определяет контракт для работы с бд репортов
type ReportRepository interface {
	// Create сохраняет репорт и обновляет last_seen кота в одной транзакции
	Create(ctx context.Context, report *models.Report) error
	ListByCat(ctx context.Context, catID uuid.UUID) ([]*models.Report, error)
	ListByReporter(ctx context.Context, reporterID uuid.UUID) ([]*models.Report, error)
	DeleteByCat(ctx context.Context, catID uuid.UUID) error
}

// ImageStore определяет контракт для хранилища фотографий
type ImageStore interface {
	ProcessAll(catID string, files []imaging.Upload) ([]string, error)
	Delete(urls []string)
}

// CreateCatInput - данные для создания карточки кота
type CreateCatInput struct {
	Name        string
	Description string
	Status      string
	Latitude    float64
	Longitude   float64
	Photos      []imaging.Upload
	OwnerID     *uuid.UUID
}

// AddReportInput - данные для добавления репорта о встрече
type AddReportInput struct {
	Description string
	Latitude    float64
	Longitude   float64
	Photos      []imaging.Upload
	ReporterID  *uuid.UUID
}

// CatDetails - карточка кота вместе со всеми репортами о нем
type CatDetails struct {
	Cat     *models.Cat
	Reports []*models.Report
}

// CatService определяет контракт для бизнес-логики управления котами
type CatService interface {
	ListCats(ctx context.Context, filter CatFilter) ([]*models.Cat, int, error)
	GetCatDetails(ctx context.Context, id uuid.UUID) (*CatDetails, error)
	CreateCat(ctx context.Context, input CreateCatInput) (*models.Cat, error)
	AddReport(ctx context.Context, catID uuid.UUID, input AddReportInput) (*models.Report, error)
	UpdateCatStatus(ctx context.Context, catID uuid.UUID, status string, userID uuid.UUID) (*models.Cat, error)
	DeleteCat(ctx context.Context, catID uuid.UUID, userID uuid.UUID) error
}

type catService struct {
	cats      CatRepository
	reports   ReportRepository
	images    ImageStore
	publisher notify.Publisher
	logger    *logrus.Logger
}

func NewCatService(cats CatRepository, reports ReportRepository, images ImageStore, publisher notify.Publisher, logger *logrus.Logger) CatService {
	return &catService{
		cats:      cats,
		reports:   reports,
		images:    images,
		publisher: publisher,
		logger:    logger,
	}
}

// ListCats возвращает список котов с пагинацией и опциональным гео-фильтром
func (s *catService) ListCats(ctx context.Context, filter CatFilter) ([]*models.Cat, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.RadiusKm <= 0 {
		filter.RadiusKm = 10
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "cat",
		"method":  "ListCats",
		"page":    filter.Page,
		"limit":   filter.Limit,
	})
	log.Info("Listing cats")

	cats, total, err := s.cats.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list cats from repository")
		return nil, 0, fmt.Errorf("service: could not list cats: %w", err)
	}

	log.WithField("count", len(cats)).Info("Cats listed successfully")
	return cats, total, nil
}

// GetCatDetails возвращает карточку кота вместе со всеми репортами о нем.
// Карточка кэшируется в Redis, репорты всегда читаются из бд.
func (s *catService) GetCatDetails(ctx context.Context, id uuid.UUID) (*CatDetails, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cat",
		"method":  "GetCatDetails",
		"cat_id":  id,
	})
	log.Info("Fetching cat details")

	cat, err := s.cats.GetCatFromCache(ctx, id)
	if err != nil {
		// Промах кеша не фатален, идем в бд
		log.WithError(err).Warn("Failed to get cat from cache")
	}

	if cat == nil {
		cat, err = s.cats.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			log.WithError(err).Error("Failed to get cat from repository")
			return nil, fmt.Errorf("service: could not get cat: %w", err)
		}
		if err := s.cats.SetCatCache(ctx, cat); err != nil {
			log.WithError(err).Warn("Failed to set cat cache")
		}
	}

	reports, err := s.reports.ListByCat(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to list reports for cat")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.Info("Cat details fetched successfully")
	return &CatDetails{Cat: cat, Reports: reports}, nil
}

// CreateCat обрабатывает фотографии, сохраняет кота и рассылает NEW_CAT
func (s *catService) CreateCat(ctx context.Context, input CreateCatInput) (*models.Cat, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cat",
		"method":  "CreateCat",
		"name":    input.Name,
	})
	log.Info("Attempting to create a new cat")

	catID := uuid.New()

	photoURLs, err := s.images.ProcessAll(catID.String(), input.Photos)
	if err != nil {
		log.WithError(err).Error("Failed to process uploaded photos")
		return nil, fmt.Errorf("service: could not process photos: %w", err)
	}

	cat := &models.Cat{
		ID:          catID,
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Photos:      photoURLs,
		OwnerID:     input.OwnerID,
		LastSeen: models.LastSeen{
			Latitude:  input.Latitude,
			Longitude: input.Longitude,
			Timestamp: time.Now().UTC(),
		},
	}

	if err := s.cats.Create(ctx, cat); err != nil {
		// Осиротевшие файлы подчищаем сразу
		s.images.Delete(photoURLs)
		log.WithError(err).Error("Failed to create cat in repository")
		return nil, fmt.Errorf("service: could not create cat: %w", err)
	}

	s.publish(ctx, notify.Event{
		Type: notify.EventNewCat,
		Data: notify.EventData{CatID: cat.ID.String(), Cat: cat},
	})

	log.WithField("cat_id", cat.ID).Info("Cat created successfully")
	return cat, nil
}

// AddReport сохраняет репорт о встрече и обновляет last_seen кота.
// Запись репорта и обновление кота выполняются одной транзакцией.
func (s *catService) AddReport(ctx context.Context, catID uuid.UUID, input AddReportInput) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cat",
		"method":  "AddReport",
		"cat_id":  catID,
	})
	log.Info("Attempting to add a report")

	cat, err := s.cats.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Report for unknown cat")
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get cat from repository")
		return nil, fmt.Errorf("service: could not get cat: %w", err)
	}

	photoURLs, err := s.images.ProcessAll(catID.String(), input.Photos)
	if err != nil {
		log.WithError(err).Error("Failed to process uploaded photos")
		return nil, fmt.Errorf("service: could not process photos: %w", err)
	}

	report := &models.Report{
		ID:          uuid.New(),
		CatID:       catID,
		ReporterID:  input.ReporterID,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Photos:      photoURLs,
	}

	if err := s.reports.Create(ctx, report); err != nil {
		s.images.Delete(photoURLs)
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}

	if err := s.cats.InvalidateCatCache(ctx, catID); err != nil {
		log.WithError(err).Warn("Failed to invalidate cat cache")
	}

	cat.LastSeen = models.LastSeen{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Timestamp: report.CreatedAt,
	}

	s.publish(ctx, notify.Event{
		Type: notify.EventCatUpdated,
		Data: notify.EventData{CatID: cat.ID.String(), Cat: cat},
	})

	// Владельцу кота репорт доставляется адресно, остальным - рассылкой
	newReport := notify.Event{
		Type: notify.EventNewReport,
		Data: notify.EventData{CatID: cat.ID.String()},
	}
	if cat.OwnerID != nil && (input.ReporterID == nil || *input.ReporterID != *cat.OwnerID) {
		newReport.Targets = []uuid.UUID{*cat.OwnerID}
	}
	s.publish(ctx, newReport)

	log.WithField("report_id", report.ID).Info("Report added successfully")
	return report, nil
}

// UpdateCatStatus переводит кота в новый статус. Разрешено только владельцу.
func (s *catService) UpdateCatStatus(ctx context.Context, catID uuid.UUID, status string, userID uuid.UUID) (*models.Cat, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cat",
		"method":  "UpdateCatStatus",
		"cat_id":  catID,
		"status":  status,
	})
	log.Info("Attempting to update cat status")

	cat, err := s.cats.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		log.WithError(err).Error("Failed to get cat from repository")
		return nil, fmt.Errorf("service: could not get cat: %w", err)
	}

	if cat.OwnerID == nil || *cat.OwnerID != userID {
		log.Warn("Status update attempted by non-owner")
		return nil, ErrForbidden
	}

	if err := s.cats.UpdateStatus(ctx, catID, status); err != nil {
		log.WithError(err).Error("Failed to update cat status in repository")
		return nil, fmt.Errorf("service: could not update cat status: %w", err)
	}

	if err := s.cats.InvalidateCatCache(ctx, catID); err != nil {
		log.WithError(err).Warn("Failed to invalidate cat cache")
	}

	cat.Status = status

	s.publish(ctx, notify.Event{
		Type: notify.EventCatUpdated,
		Data: notify.EventData{CatID: cat.ID.String(), Cat: cat},
	})

	log.Info("Cat status updated successfully")
	return cat, nil
}

// DeleteCat удаляет кота вместе с его репортами и файлами фотографий.
// Разрешено только владельцу.
func (s *catService) DeleteCat(ctx context.Context, catID uuid.UUID, userID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "cat",
		"method":  "DeleteCat",
		"cat_id":  catID,
	})
	log.Info("Attempting to delete cat")

	cat, err := s.cats.GetByID(ctx, catID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		log.WithError(err).Error("Failed to get cat from repository")
		return fmt.Errorf("service: could not get cat: %w", err)
	}

	if cat.OwnerID == nil || *cat.OwnerID != userID {
		log.Warn("Delete attempted by non-owner")
		return ErrForbidden
	}

	reports, err := s.reports.ListByCat(ctx, catID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports for cat")
		return fmt.Errorf("service: could not list reports: %w", err)
	}

	if err := s.reports.DeleteByCat(ctx, catID); err != nil {
		log.WithError(err).Error("Failed to delete reports in repository")
		return fmt.Errorf("service: could not delete reports: %w", err)
	}

	if err := s.cats.Delete(ctx, catID); err != nil {
		log.WithError(err).Error("Failed to delete cat in repository")
		return fmt.Errorf("service: could not delete cat: %w", err)
	}

	if err := s.cats.InvalidateCatCache(ctx, catID); err != nil {
		log.WithError(err).Warn("Failed to invalidate cat cache")
	}

	// Файлы фотографий удаляются по возможности, записи в бд уже удалены
	urls := append([]string{}, cat.Photos...)
	for _, report := range reports {
		urls = append(urls, report.Photos...)
	}
	s.images.Delete(urls)

	log.Info("Cat deleted successfully")
	return nil
}

// publish отправляет событие в очередь. Ошибка публикации не ломает запрос:
// клиенты получат данные при следующем обращении.
func (s *catService) publish(ctx context.Context, event notify.Event) {
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("event_type", event.Type).Error("Failed to publish event")
	}
}
