package persistent

import (
	"encoding/json"

	"sekor-bkc/services/api/internal/entity"
	"sekor-bkc/services/api/internal/model"

	"gorm.io/datatypes"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Name:      m.Name,
		NameBn:    m.NameBn,
		Role:      entity.Role(m.Role),
		Status:    entity.UserStatus(m.Status),
		Bio:       m.Bio,
		BioBn:     m.BioBn,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:        e.ID,
		Email:     e.Email,
		Password:  e.Password,
		Name:      e.Name,
		NameBn:    e.NameBn,
		Role:      string(e.Role),
		Status:    string(e.Status),
		Bio:       e.Bio,
		BioBn:     e.BioBn,
		AvatarURL: e.AvatarURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// toUserSummary returns nil for an association that was not loaded.
func toUserSummary(m *model.UserModel) *entity.UserSummary {
	if m == nil || m.ID == "" {
		return nil
	}
	return &entity.UserSummary{ID: m.ID, Name: m.Name, AvatarURL: m.AvatarURL}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		NameBn:      m.NameBn,
		Slug:        m.Slug,
		Description: m.Description,
		Order:       m.Order,
	}
}

func ToArticleEntity(m *model.ArticleModel) *entity.Article {
	if m == nil {
		return nil
	}

	return &entity.Article{
		ID:          m.ID,
		Title:       m.Title,
		Summary:     m.Summary,
		Content:     m.Content,
		ImageURL:    m.ImageURL,
		Status:      entity.ArticleStatus(m.Status),
		CategoryID:  m.CategoryID,
		AuthorID:    m.AuthorID,
		Views:       m.Views,
		Author:      toUserSummary(&m.Author),
		Category:    ToCategoryEntity(&m.Category),
		PublishedAt: m.PublishedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToArticleModel(e *entity.Article) *model.ArticleModel {
	if e == nil {
		return nil
	}

	return &model.ArticleModel{
		ID:          e.ID,
		Title:       e.Title,
		Summary:     e.Summary,
		Content:     e.Content,
		ImageURL:    e.ImageURL,
		Status:      string(e.Status),
		CategoryID:  e.CategoryID,
		AuthorID:    e.AuthorID,
		Views:       e.Views,
		PublishedAt: e.PublishedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToStoryEntity(m *model.StoryModel) *entity.Story {
	if m == nil {
		return nil
	}

	story := &entity.Story{
		ID:             m.ID,
		Title:          m.Title,
		TitleBn:        m.TitleBn,
		TitleEn:        m.TitleEn,
		Abstract:       m.Abstract,
		AbstractBn:     m.AbstractBn,
		AbstractEn:     m.AbstractEn,
		Body:           rawJSON(m.Body),
		BodyBn:         rawJSON(m.BodyBn),
		BodyEn:         rawJSON(m.BodyEn),
		Slug:           m.Slug,
		Thumbnail:      m.Thumbnail,
		ThumbnailAlt:   m.ThumbnailAlt,
		Language:       entity.Language(m.Language),
		ContentType:    entity.ContentType(m.ContentType),
		Status:         entity.StoryStatus(m.Status),
		CategoryID:     m.CategoryID,
		AuthorID:       m.AuthorID,
		ReviewerID:     m.ReviewerID,
		ReviewNotes:    m.ReviewNotes,
		Copyright:      entity.Copyright(m.Copyright),
		AllowComments:  m.AllowComments,
		AllowSharing:   m.AllowSharing,
		IsPremium:      m.IsPremium,
		WordCount:      m.WordCount,
		ReadingTime:    m.ReadingTime,
		ViewCount:      m.ViewCount,
		UniqueVisitors: m.UniqueVisitors,
		ReactionCount:  m.ReactionCount,
		CommentCount:   m.CommentCount,
		ShareCount:     m.ShareCount,
		BookmarkCount:  m.BookmarkCount,
		Author:         toUserSummary(&m.Author),
		Category:       ToCategoryEntity(&m.Category),
		CoAuthors:      make([]entity.UserSummary, 0, len(m.CoAuthors)),
		Tags:           make([]entity.Tag, 0, len(m.Tags)),
		Locations:      make([]entity.Location, 0, len(m.Locations)),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
		PublishedAt:    m.PublishedAt,
		ScheduledFor:   m.ScheduledFor,
		ExpiryDate:     m.ExpiryDate,
	}

	for i := range m.CoAuthors {
		story.CoAuthors = append(story.CoAuthors, *toUserSummary(&m.CoAuthors[i]))
	}
	for _, t := range m.Tags {
		story.Tags = append(story.Tags, entity.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}
	for _, l := range m.Locations {
		story.Locations = append(story.Locations, entity.Location{ID: l.ID, Name: l.Name, NameBn: l.NameBn, Slug: l.Slug})
	}
	for _, s := range m.Sources {
		story.Sources = append(story.Sources, entity.Source{
			ID:           s.ID,
			Type:         s.Type,
			Title:        s.Title,
			Author:       s.Author,
			URL:          s.URL,
			DateAccessed: s.DateAccessed,
			Notes:        s.Notes,
		})
	}
	for i := range m.Media {
		story.Media = append(story.Media, entity.StoryMedia{
			Media: ToMediaEntity(&m.Media[i].Media),
			Order: m.Media[i].Order,
		})
	}

	return story
}

// ToStoryModel maps scalar columns only; associations are written by the
// repository explicitly.
func ToStoryModel(e *entity.Story) *model.StoryModel {
	if e == nil {
		return nil
	}

	return &model.StoryModel{
		ID:             e.ID,
		Title:          e.Title,
		TitleBn:        e.TitleBn,
		TitleEn:        e.TitleEn,
		Abstract:       e.Abstract,
		AbstractBn:     e.AbstractBn,
		AbstractEn:     e.AbstractEn,
		Body:           jsonColumn(e.Body),
		BodyBn:         jsonColumn(e.BodyBn),
		BodyEn:         jsonColumn(e.BodyEn),
		Slug:           e.Slug,
		Thumbnail:      e.Thumbnail,
		ThumbnailAlt:   e.ThumbnailAlt,
		Language:       string(e.Language),
		ContentType:    string(e.ContentType),
		Status:         string(e.Status),
		CategoryID:     e.CategoryID,
		AuthorID:       e.AuthorID,
		ReviewerID:     e.ReviewerID,
		ReviewNotes:    e.ReviewNotes,
		Copyright:      string(e.Copyright),
		AllowComments:  e.AllowComments,
		AllowSharing:   e.AllowSharing,
		IsPremium:      e.IsPremium,
		WordCount:      e.WordCount,
		ReadingTime:    e.ReadingTime,
		ViewCount:      e.ViewCount,
		UniqueVisitors: e.UniqueVisitors,
		ReactionCount:  e.ReactionCount,
		CommentCount:   e.CommentCount,
		ShareCount:     e.ShareCount,
		BookmarkCount:  e.BookmarkCount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
		PublishedAt:    e.PublishedAt,
		ScheduledFor:   e.ScheduledFor,
		ExpiryDate:     e.ExpiryDate,
	}
}

func toSourceModels(storyID string, sources []entity.Source) []model.StorySourceModel {
	out := make([]model.StorySourceModel, 0, len(sources))
	for _, s := range sources {
		out = append(out, model.StorySourceModel{
			StoryID:      storyID,
			Type:         s.Type,
			Title:        s.Title,
			Author:       s.Author,
			URL:          s.URL,
			DateAccessed: s.DateAccessed,
			Notes:        s.Notes,
		})
	}
	return out
}

func ToMediaEntity(m *model.MediaModel) *entity.Media {
	if m == nil || m.ID == "" {
		return nil
	}

	return &entity.Media{
		ID:           m.ID,
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		Size:         m.Size,
		Type:         entity.MediaType(m.Type),
		StorageKey:   m.StorageKey,
		URL:          m.URL,
		AltText:      m.AltText,
		Caption:      m.Caption,
		Credit:       m.Credit,
		UsageCount:   m.UsageCount,
		UploadedByID: m.UploadedByID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:           e.ID,
		Filename:     e.Filename,
		OriginalName: e.OriginalName,
		MimeType:     e.MimeType,
		Size:         e.Size,
		Type:         string(e.Type),
		StorageKey:   e.StorageKey,
		URL:          e.URL,
		AltText:      e.AltText,
		Caption:      e.Caption,
		Credit:       e.Credit,
		UsageCount:   e.UsageCount,
		UploadedByID: e.UploadedByID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		StoryID:   m.StoryID,
		UserID:    m.UserID,
		Content:   m.Content,
		User:      toUserSummary(&m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func rawJSON(j datatypes.JSON) json.RawMessage {
	if len(j) == 0 {
		return nil
	}
	return json.RawMessage(j)
}

func jsonColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}
