package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-review-platform/internal/models"
	"github.com/sbilibin2017/gw-review-platform/internal/services"
)

func TestCommentsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := services.NewMockCommentReviewReader(ctrl)
	mockReader := services.NewMockCommentReader(ctrl)
	mockWriter := services.NewMockCommentWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewCommentsService(mockReviews, mockReader, mockWriter, mockKafka)

	actor := &models.UserDB{UserID: uuid.New(), Username: "alice", Role: models.RoleUser, IsActive: true}
	review := &models.ReviewDB{ReviewID: 42, TitleID: 7}

	t.Run("created", func(t *testing.T) {
		saved := &models.CommentDB{CommentID: 100, ReviewID: 42, AuthorID: actor.UserID, Author: "alice", Text: "agreed"}

		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil)
		mockWriter.EXPECT().Save(gomock.Any(), int64(42), actor.UserID, "agreed").Return(int64(100), nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(saved, nil)

		comment, err := svc.Create(context.Background(), actor, 7, 42, "agreed")
		assert.NoError(t, err)
		assert.Equal(t, int64(100), comment.CommentID)
	})

	t.Run("review under wrong title", func(t *testing.T) {
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil)

		_, err := svc.Create(context.Background(), actor, 8, 42, "agreed")
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
	})

	t.Run("missing review", func(t *testing.T) {
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(43)).Return(nil, nil)

		_, err := svc.Create(context.Background(), actor, 7, 43, "agreed")
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
	})
}

func TestCommentsService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := services.NewMockCommentReviewReader(ctrl)
	mockReader := services.NewMockCommentReader(ctrl)

	svc := services.NewCommentsService(mockReviews, mockReader, services.NewMockCommentWriter(ctrl), nil)

	review := &models.ReviewDB{ReviewID: 42, TitleID: 7}

	t.Run("comment under wrong review", func(t *testing.T) {
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(&models.CommentDB{CommentID: 100, ReviewID: 41}, nil)

		_, err := svc.GetByID(context.Background(), 7, 42, 100)
		assert.ErrorIs(t, err, services.ErrCommentNotFound)
	})
}

func TestCommentsService_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReviews := services.NewMockCommentReviewReader(ctrl)
	mockReader := services.NewMockCommentReader(ctrl)
	mockWriter := services.NewMockCommentWriter(ctrl)

	svc := services.NewCommentsService(mockReviews, mockReader, mockWriter, nil)

	author := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser, IsActive: true}
	stranger := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser, IsActive: true}
	admin := &models.UserDB{UserID: uuid.New(), Role: models.RoleAdmin, IsActive: true}

	review := &models.ReviewDB{ReviewID: 42, TitleID: 7}
	stored := &models.CommentDB{CommentID: 100, ReviewID: 42, AuthorID: author.UserID, Text: "old"}

	t.Run("author updates", func(t *testing.T) {
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil).Times(2)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(stored, nil).Times(2)
		mockWriter.EXPECT().Update(gomock.Any(), int64(100), "new").Return(nil)

		_, err := svc.Update(context.Background(), author, 7, 42, 100, "new")
		assert.NoError(t, err)
	})

	t.Run("stranger forbidden", func(t *testing.T) {
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(stored, nil)

		_, err := svc.Update(context.Background(), stranger, 7, 42, 100, "new")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("admin deletes", func(t *testing.T) {
		mockReviews.EXPECT().GetByID(gomock.Any(), int64(42)).Return(review, nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(100)).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(100)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), admin, 7, 42, 100))
	})
}
