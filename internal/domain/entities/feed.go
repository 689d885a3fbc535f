package entities

// FeedPost is a social entry. Likes and IsLiked move together; Comments counts
// comments on the post, including ones this device has never downloaded.
type FeedPost struct {
	ID       string      `json:"id"`
	User     UserProfile `json:"user"`
	ImageURL string      `json:"imageUrl"`
	Caption  string      `json:"caption"`
	Likes    int         `json:"likes"`
	Comments int         `json:"comments"`
	Date     string      `json:"date"`
	Products []Product   `json:"products,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
	IsLiked  bool        `json:"isLiked"`
	IsSaved  bool        `json:"isSaved"`
}

func (p FeedPost) Clone() FeedPost {
	p.User = *p.User.Clone()
	p.Products = CloneProducts(p.Products)
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

type Comment struct {
	ID    string      `json:"id"`
	User  UserProfile `json:"user"`
	Text  string      `json:"text"`
	Date  string      `json:"date"`
	Likes int         `json:"likes"`
}

func (c Comment) Clone() Comment {
	c.User = *c.User.Clone()
	return c
}

// CloneComments is nil for nil input.
func CloneComments(cs []Comment) []Comment {
	if cs == nil {
		return nil
	}
	out := make([]Comment, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}
