package handler

import (
	"time"

	"github.com/andrewshostak/esports-notifier/internal/app/models"
)

type CreateSubscriptionRequest struct {
	Team string `binding:"required" json:"team"`
	URL  string `binding:"required" json:"url"`
}

type DeleteSubscriptionRequest struct {
	Team string `form:"team" binding:"required"`
	URL  string `form:"url" binding:"required"`
}

type SubscriptionResponse struct {
	Team      string    `json:"team"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

type PollResponse struct {
	StartedAt        time.Time            `json:"started_at"`
	FinishedAt       time.Time            `json:"finished_at"`
	Teams            []TeamReportResponse `json:"teams"`
	Notified         int                  `json:"notified"`
	FailedDeliveries int                  `json:"failed_deliveries"`
	Errors           int                  `json:"errors"`
}

type TeamReportResponse struct {
	Team       string `json:"team"`
	Candidates int    `json:"candidates"`
	Matched    int    `json:"matched"`
	New        int    `json:"new"`
	Delivered  int    `json:"delivered"`
	Failed     int    `json:"failed"`
	Error      string `json:"error,omitempty"`
}

func (r *CreateSubscriptionRequest) ToDomain() models.CreateSubscriptionRequest {
	return models.CreateSubscriptionRequest{
		Team: r.Team,
		URL:  r.URL,
	}
}

func (r *DeleteSubscriptionRequest) ToDomain() models.DeleteSubscriptionRequest {
	return models.DeleteSubscriptionRequest{
		Team: r.Team,
		URL:  r.URL,
	}
}

func fromDomainSubscriptions(subscriptions []models.Subscription) []SubscriptionResponse {
	response := make([]SubscriptionResponse, 0, len(subscriptions))
	for _, s := range subscriptions {
		response = append(response, SubscriptionResponse{Team: s.Team, URL: s.URL, CreatedAt: s.CreatedAt})
	}

	return response
}

func fromDomainCycleReport(report models.CycleReport) PollResponse {
	response := PollResponse{
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Teams:      make([]TeamReportResponse, 0, len(report.Teams)),
	}

	for _, t := range report.Teams {
		item := TeamReportResponse{
			Team:       t.Team,
			Candidates: t.Candidates,
			Matched:    t.Matched,
			New:        t.New,
			Delivered:  t.Delivered,
			Failed:     t.Failed,
		}

		if t.Err != nil {
			item.Error = t.Err.Error()
			response.Errors++
		}

		response.Notified += t.Delivered
		response.FailedDeliveries += t.Failed
		response.Teams = append(response.Teams, item)
	}

	return response
}
