package serializers

import (
	"time"

	"authorshaven/models"
)

// ReplyResponse carries no replies of its own: nesting stops one level down.
type ReplyResponse struct {
	ID        uint        `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Body      string      `json:"body"`
	Author    UserPayload `json:"author"`
}

type CommentResponse struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Body      string          `json:"body"`
	Author    UserPayload     `json:"author"`
	Replies   []ReplyResponse `json:"replies"`
}

func newReplyResponse(comment models.Comment) ReplyResponse {
	return ReplyResponse{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Body:      comment.Body,
		Author:    NewUserPayload(comment.Author),
	}
}

func NewCommentResponse(comment *models.Comment) CommentResponse {
	replies := make([]ReplyResponse, 0, len(comment.Replies))
	for _, reply := range comment.Replies {
		replies = append(replies, newReplyResponse(reply))
	}
	return CommentResponse{
		ID:        comment.ID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		Body:      comment.Body,
		Author:    NewUserPayload(comment.Author),
		Replies:   replies,
	}
}

func NewCommentListResponse(comments []models.Comment) []CommentResponse {
	list := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		list = append(list, NewCommentResponse(&comments[i]))
	}
	return list
}
