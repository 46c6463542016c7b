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

func TestReviewsService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTitles := services.NewMockReviewTitleReader(ctrl)
	mockReader := services.NewMockReviewReader(ctrl)
	mockWriter := services.NewMockReviewWriter(ctrl)
	mockCache := services.NewMockRatingInvalidator(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewReviewsService(mockTitles, mockReader, mockWriter, mockCache, mockKafka)

	actor := &models.UserDB{UserID: uuid.New(), Username: "alice", Role: models.RoleUser, IsActive: true}
	title := &models.Title{TitleID: 7, Name: "Some Work"}

	t.Run("created", func(t *testing.T) {
		saved := &models.ReviewDB{ReviewID: 42, TitleID: 7, AuthorID: actor.UserID, Author: "alice", Text: "great", Score: 9}

		mockTitles.EXPECT().GetByID(gomock.Any(), int64(7)).Return(title, nil)
		mockReader.EXPECT().GetByTitleAndAuthor(gomock.Any(), int64(7), actor.UserID).Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), int64(7), actor.UserID, "great", 9).Return(int64(42), nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(nil)
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(saved, nil)

		review, err := svc.Create(context.Background(), actor, 7, "great", 9)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), review.ReviewID)
		assert.Equal(t, "alice", review.Author)
	})

	t.Run("unknown title", func(t *testing.T) {
		mockTitles.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.Create(context.Background(), actor, 99, "great", 9)
		assert.ErrorIs(t, err, services.ErrTitleNotFound)
	})

	t.Run("second review of same title", func(t *testing.T) {
		existing := &models.ReviewDB{ReviewID: 42, TitleID: 7, AuthorID: actor.UserID}

		mockTitles.EXPECT().GetByID(gomock.Any(), int64(7)).Return(title, nil)
		mockReader.EXPECT().GetByTitleAndAuthor(gomock.Any(), int64(7), actor.UserID).Return(existing, nil)

		_, err := svc.Create(context.Background(), actor, 7, "again", 5)
		assert.ErrorIs(t, err, services.ErrReviewExists)
	})

	t.Run("lost race on unique constraint", func(t *testing.T) {
		mockTitles.EXPECT().GetByID(gomock.Any(), int64(7)).Return(title, nil)
		mockReader.EXPECT().GetByTitleAndAuthor(gomock.Any(), int64(7), actor.UserID).Return(nil, nil)
		mockWriter.EXPECT().Save(gomock.Any(), int64(7), actor.UserID, "again", 5).Return(int64(0), uniqueViolation())

		_, err := svc.Create(context.Background(), actor, 7, "again", 5)
		assert.ErrorIs(t, err, services.ErrReviewExists)
	})
}

func TestReviewsService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReviewReader(ctrl)
	svc := services.NewReviewsService(
		services.NewMockReviewTitleReader(ctrl),
		mockReader,
		services.NewMockReviewWriter(ctrl),
		services.NewMockRatingInvalidator(ctrl),
		nil,
	)

	t.Run("wrong title in path", func(t *testing.T) {
		// A review fetched under a title it does not belong to is a 404,
		// not a leak of the other title's content.
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(&models.ReviewDB{ReviewID: 42, TitleID: 7}, nil)

		_, err := svc.GetByID(context.Background(), 8, 42)
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
	})

	t.Run("missing review", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := svc.GetByID(context.Background(), 7, 42)
		assert.ErrorIs(t, err, services.ErrReviewNotFound)
	})
}

func TestReviewsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReviewReader(ctrl)
	mockWriter := services.NewMockReviewWriter(ctrl)
	mockCache := services.NewMockRatingInvalidator(ctrl)

	svc := services.NewReviewsService(
		services.NewMockReviewTitleReader(ctrl),
		mockReader, mockWriter, mockCache, nil,
	)

	author := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser, IsActive: true}
	stranger := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser, IsActive: true}
	moderator := &models.UserDB{UserID: uuid.New(), Role: models.RoleModerator, IsActive: true}
	stored := &models.ReviewDB{ReviewID: 42, TitleID: 7, AuthorID: author.UserID, Text: "old", Score: 5}

	t.Run("author updates own review", func(t *testing.T) {
		updated := &models.ReviewDB{ReviewID: 42, TitleID: 7, AuthorID: author.UserID, Text: "new", Score: 8}

		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil)
		mockWriter.EXPECT().Update(gomock.Any(), int64(42), "new", 8).Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(updated, nil)

		review, err := svc.Update(context.Background(), author, 7, 42, "new", 8)
		assert.NoError(t, err)
		assert.Equal(t, 8, review.Score)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil)

		_, err := svc.Update(context.Background(), stranger, 7, 42, "new", 8)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("moderator may edit", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil)
		mockWriter.EXPECT().Update(gomock.Any(), int64(42), "moderated", 5).Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(nil)
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil)

		_, err := svc.Update(context.Background(), moderator, 7, 42, "moderated", 5)
		assert.NoError(t, err)
	})
}

func TestReviewsService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockReviewReader(ctrl)
	mockWriter := services.NewMockReviewWriter(ctrl)
	mockCache := services.NewMockRatingInvalidator(ctrl)

	svc := services.NewReviewsService(
		services.NewMockReviewTitleReader(ctrl),
		mockReader, mockWriter, mockCache, nil,
	)

	author := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser, IsActive: true}
	stranger := &models.UserDB{UserID: uuid.New(), Role: models.RoleUser, IsActive: true}
	stored := &models.ReviewDB{ReviewID: 42, TitleID: 7, AuthorID: author.UserID}

	t.Run("author deletes and cache drops", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)
		mockCache.EXPECT().Invalidate(gomock.Any(), int64(7)).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), author, 7, 42))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), int64(42)).Return(stored, nil)

		assert.ErrorIs(t, svc.Delete(context.Background(), stranger, 7, 42), services.ErrForbidden)
	})
}
