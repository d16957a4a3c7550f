package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"authorshaven/global"
	"authorshaven/repository"
	"authorshaven/serializers"
	"authorshaven/services"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
)

type reportRequest struct {
	Message string `json:"message" binding:"required"`
}

func newReportService() *services.ReportService {
	return services.NewReportService(
		repository.NewArticleRepository(global.Db),
		repository.NewUserRepository(global.Db),
		repository.NewReportRepository(global.Db),
	)
}

func ReportArticle(ctx *gin.Context) {
	var req reportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := newReportService().Create(ctx.Param("slug"), currentUserID(ctx), req.Message)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := serializers.NewReportResponse(report)
	publishReport(response)

	ctx.JSON(http.StatusCreated, response)
}

func ListReports(ctx *gin.Context) {
	reports, err := newReportService().List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"reports": serializers.NewReportListResponse(reports)})
}

// publishReport hands the report to the moderation queue. The report row is
// already committed; a publish failure only costs the notification.
func publishReport(report serializers.ReportResponse) {
	if global.RabbitChannel == nil {
		return
	}

	body, err := json.Marshal(report)
	if err != nil {
		log.Println("failed to marshal report event:", err)
		return
	}

	err = global.RabbitChannel.Publish("", global.ReportQueue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Println("failed to publish report event:", err)
	}
}
