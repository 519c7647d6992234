package twitterapi

// wire shapes for the content source API
// counters arrive as int64 because viral posts overflow int32 view counts

type userEnvelope struct {
	Data userData `json:"data"`
}

type userData struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Name      string `json:"name"`
	Followers int64  `json:"followers"`
	Bio       string `json:"description"`
}

type tweetsEnvelope struct {
	Tweets     []tweetData `json:"tweets"`
	HasNext    bool        `json:"has_next_page"`
	NextCursor string      `json:"next_cursor"`
}

type tweetData struct {
	ID            string `json:"id"`
	Text          string `json:"text"`
	CreatedAt     string `json:"createdAt"`
	LikeCount     int64  `json:"likeCount"`
	RetweetCount  int64  `json:"retweetCount"`
	ReplyCount    int64  `json:"replyCount"`
	QuoteCount    int64  `json:"quoteCount"`
	ViewCount     int64  `json:"viewCount"`
	BookmarkCount int64  `json:"bookmarkCount"`
	IsReply       bool   `json:"isReply"`
}

// createdAtLayout is the content source's timestamp format
const createdAtLayout = "Mon Jan 02 15:04:05 -0700 2006"
