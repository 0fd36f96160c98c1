package entity

// Comment is either top-level (ParentID nil) or a reply. A reply always
// belongs to the same movie as its parent.
type Comment struct {
	BaseSimple
	UserID   int64  `db:"user_id"`
	MovieID  int64  `db:"movie_id"`
	Content  string `db:"content"`
	ParentID *int64 `db:"parent_id"`
}

func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}
