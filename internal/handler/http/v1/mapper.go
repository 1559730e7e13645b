package v1

import (
	"github.com/shenikar/cat_finder_system/internal/models"
	"github.com/shenikar/cat_finder_system/internal/service"
)

// ModelToUserResponse преобразует доменную модель пользователя в DTO
func ModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Phone: user.Phone,
	}
}

// ModelToCatListItem преобразует кота в элемент списка с минимальной проекцией.
// Position отдается парой [широта, долгота].
func ModelToCatListItem(cat *models.Cat) *CatListItem {
	item := &CatListItem{
		ID:       cat.ID,
		Name:     cat.Name,
		Position: [2]float64{cat.LastSeen.Latitude, cat.LastSeen.Longitude},
		Status:   cat.Status,
		LastSeen: cat.LastSeen.Timestamp,
	}
	if len(cat.Photos) > 0 {
		item.ThumbnailURL = cat.Photos[0]
	}
	return item
}

// ModelsToCatListItems преобразует слайс котов в элементы списка
func ModelsToCatListItems(cats []*models.Cat) []*CatListItem {
	items := make([]*CatListItem, len(cats))
	for i, cat := range cats {
		items[i] = ModelToCatListItem(cat)
	}
	return items
}

// ModelToReportResponse преобразует репорт в DTO
func ModelToReportResponse(report *models.Report) *ReportResponse {
	resp := &ReportResponse{
		ID:          report.ID,
		CatID:       report.CatID,
		Location:    [2]float64{report.Latitude, report.Longitude},
		Description: report.Description,
		Timestamp:   report.CreatedAt,
		Photos:      report.Photos,
	}
	if report.ReporterID != nil {
		resp.Reporter = &ReporterInfo{
			ID:   *report.ReporterID,
			Name: report.ReporterName,
		}
	}
	return resp
}

// ModelsToReportResponses преобразует слайс репортов в DTO
func ModelsToReportResponses(reports []*models.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ModelToReportResponse(report)
	}
	return responses
}

// DetailsToCatDetailResponse преобразует карточку кота с репортами в DTO
func DetailsToCatDetailResponse(details *service.CatDetails) *CatDetailResponse {
	cat := details.Cat
	return &CatDetailResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Position:    [2]float64{cat.LastSeen.Latitude, cat.LastSeen.Longitude},
		Status:      cat.Status,
		LastSeen:    cat.LastSeen.Timestamp,
		Description: cat.Description,
		Photos:      cat.Photos,
		Reports:     ModelsToReportResponses(details.Reports),
	}
}

// ProfileToResponse преобразует профиль в DTO
func ProfileToResponse(profile *service.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:      profile.User.ID,
		Email:   profile.User.Email,
		Name:    profile.User.Name,
		Phone:   profile.User.Phone,
		Cats:    ModelsToCatListItems(profile.Cats),
		Reports: ModelsToReportResponses(profile.Reports),
	}
}
