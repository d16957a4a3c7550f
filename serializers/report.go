package serializers

import "authorshaven/models"

// ReportResponse trades the numeric foreign keys for the reporter's username
// and the article's slug.
type ReportResponse struct {
	ID      uint   `json:"id"`
	User    string `json:"user"`
	Article string `json:"article"`
	Message string `json:"message"`
}

func NewReportResponse(report *models.ReportedArticle) ReportResponse {
	return ReportResponse{
		ID:      report.ID,
		User:    report.User.Username,
		Article: report.Article.Slug,
		Message: report.Message,
	}
}

func NewReportListResponse(reports []models.ReportedArticle) []ReportResponse {
	list := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		list = append(list, NewReportResponse(&reports[i]))
	}
	return list
}
