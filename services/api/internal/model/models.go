package model

// All lists every model in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&UserFollowModel{},
		&CategoryModel{},
		&TagModel{},
		&LocationModel{},
		&ArticleModel{},
		&MediaModel{},
		&StoryModel{},
		&StorySourceModel{},
		&StoryMediaModel{},
		&CommentModel{},
		&SavedContentModel{},
		&ContentEngagementModel{},
	}
}
