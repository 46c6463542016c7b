package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommentRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewCommentWriteRepository(db)
	readRepo := NewCommentReadRepository(db)
	ctx := context.Background()

	aliceID := seedUser(t, db, "alice")
	bobID := seedUser(t, db, "bob")
	titleID := seedTitle(t, db, "Some Work", 2001)

	reviewID, err := NewReviewWriteRepository(db).Save(ctx, titleID, aliceID, "great", 9)
	assert.NoError(t, err)

	var firstID int64

	t.Run("Save and GetByID joins author username", func(t *testing.T) {
		firstID, err = writeRepo.Save(ctx, reviewID, bobID, "disagree")
		assert.NoError(t, err)

		comment, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.NotNil(t, comment)
		assert.Equal(t, "bob", comment.Author)
		assert.Equal(t, reviewID, comment.ReviewID)
	})

	t.Run("ListByReview oldest first", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, reviewID, aliceID, "fair point")
		assert.NoError(t, err)

		comments, err := readRepo.ListByReview(ctx, reviewID, 10, 0)
		assert.NoError(t, err)
		assert.Len(t, comments, 2)
		assert.Equal(t, "bob", comments[0].Author)
		assert.Equal(t, "alice", comments[1].Author)
	})

	t.Run("Update", func(t *testing.T) {
		assert.NoError(t, writeRepo.Update(ctx, firstID, "changed my mind"))

		comment, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Equal(t, "changed my mind", comment.Text)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, writeRepo.Delete(ctx, firstID))

		comment, err := readRepo.GetByID(ctx, firstID)
		assert.NoError(t, err)
		assert.Nil(t, comment)
	})
}
