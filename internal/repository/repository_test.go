package repository

import (
	"context"
	"fmt"
	"testing"

	"errorswag/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Article{}, &models.Bookmark{}, &models.Follower{}, &models.Rating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "x", Role: models.RoleUser, Status: models.StatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedArticle(t *testing.T, db *gorm.DB, authorID uint, title, slug string) *models.Article {
	t.Helper()
	article := &models.Article{Title: title, Body: "body", Slug: slug, AuthorID: authorID}
	if err := db.Create(article).Error; err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return article
}

func TestFindOneByFieldAbsent(t *testing.T) {
	db := openTestDB(t)
	users := New[models.User](db)

	got, err := users.FindOneByField(context.Background(), Criteria{"email": "nobody@example.com"})
	if err != nil {
		t.Fatalf("FindOneByField: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for absent record", got)
	}
}

func TestFindOrCreate(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "ann", "ann@example.com")
	other := seedUser(t, db, "ben", "ben@example.com")
	followers := New[models.Follower](db)

	lookup := Criteria{"follower_id": user.ID, "followee_id": other.ID}
	defaults := models.Follower{FollowerID: user.ID, FolloweeID: other.ID}

	edge, created, err := followers.FindOrCreate(context.Background(), lookup, defaults)
	if err != nil {
		t.Fatalf("FindOrCreate: %v", err)
	}
	if !created {
		t.Error("first call: created = false, want true")
	}

	again, created, err := followers.FindOrCreate(context.Background(), lookup, defaults)
	if err != nil {
		t.Fatalf("FindOrCreate repeat: %v", err)
	}
	if created {
		t.Error("second call: created = true, want false")
	}
	if again.ID != edge.ID {
		t.Errorf("second call returned id %d, want existing id %d", again.ID, edge.ID)
	}

	var count int64
	db.Model(&models.Follower{}).Count(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestUpdateRowsAffected(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "ann", "ann@example.com")
	users := New[models.User](db)

	rows, err := users.Update(context.Background(), Criteria{"bio": "hello"}, Criteria{"id": user.ID})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}

	rows, err = users.Update(context.Background(), Criteria{"bio": "hello"}, Criteria{"id": 9999})
	if err != nil {
		t.Fatalf("Update absent: %v", err)
	}
	if rows != 0 {
		t.Errorf("rows for absent id = %d, want 0", rows)
	}

	got, err := users.FindOneByField(context.Background(), Criteria{"id": user.ID})
	if err != nil {
		t.Fatalf("FindOneByField: %v", err)
	}
	if got.Bio != "hello" {
		t.Errorf("bio = %q, want hello", got.Bio)
	}
}

func TestFindAndCountAll(t *testing.T) {
	db := openTestDB(t)
	author := seedUser(t, db, "ann", "ann@example.com")
	for i := 0; i < 5; i++ {
		seedArticle(t, db, author.ID, fmt.Sprintf("title %d", i), fmt.Sprintf("slug-%d", i))
	}
	articles := New[models.Article](db)

	count, rows, err := articles.FindAndCountAll(context.Background(), Query{
		Limit:  2,
		Offset: 2,
		Fields: []string{"id", "title", "author_id"},
	})
	if err != nil {
		t.Fatalf("FindAndCountAll: %v", err)
	}
	if count != 5 {
		t.Errorf("count = %d, want 5 (count must ignore limit/offset)", count)
	}
	if len(rows) != 2 {
		t.Errorf("len(rows) = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Body != "" {
			t.Errorf("body selected despite projection: %q", row.Body)
		}
		if row.Title == "" {
			t.Error("projected title is empty")
		}
	}
}

func TestFindAndInclude(t *testing.T) {
	db := openTestDB(t)
	author := seedUser(t, db, "ann", "ann@example.com")
	reader := seedUser(t, db, "ben", "ben@example.com")
	article := seedArticle(t, db, author.ID, "a title", "a-title")

	bookmarks := New[models.Bookmark](db)
	if _, err := bookmarks.Create(context.Background(), &models.Bookmark{UserID: reader.ID, ArticleID: article.ID}); err != nil {
		t.Fatalf("create bookmark: %v", err)
	}

	got, err := bookmarks.FindAndInclude(context.Background(), Criteria{"user_id": reader.ID}, "Article", nil)
	if err != nil {
		t.Fatalf("FindAndInclude: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Article.ID != article.ID || got[0].Article.Title != "a title" {
		t.Errorf("joined article = %+v, want id %d", got[0].Article, article.ID)
	}
}

func TestRemove(t *testing.T) {
	db := openTestDB(t)
	user := seedUser(t, db, "ann", "ann@example.com")
	other := seedUser(t, db, "ben", "ben@example.com")
	followers := New[models.Follower](db)

	if _, err := followers.Create(context.Background(), &models.Follower{FollowerID: user.ID, FolloweeID: other.ID}); err != nil {
		t.Fatalf("create: %v", err)
	}

	criteria := Criteria{"follower_id": user.ID, "followee_id": other.ID}
	rows, err := followers.Remove(context.Background(), criteria)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if rows != 1 {
		t.Errorf("rows = %d, want 1", rows)
	}

	rows, err = followers.Remove(context.Background(), criteria)
	if err != nil {
		t.Fatalf("Remove repeat: %v", err)
	}
	if rows != 0 {
		t.Errorf("rows after delete = %d, want 0", rows)
	}
}
