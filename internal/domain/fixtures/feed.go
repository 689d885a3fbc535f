package fixtures

import "github.com/AtRiskMedia/glowyn-go/internal/domain/entities"

func FeedPosts() []entities.FeedPost {
	users := PopularUsers()
	p := FeaturedProducts()
	return []entities.FeedPost{
		{
			ID:       "post-1",
			User:     users[0],
			ImageURL: photo("photo-1529626455594-4ff0802cfb7e"),
			Caption:  "Found my perfect spring palette! Loving these warm coral tones. #SpringStyle #ColorAnalysis",
			Likes:    1243,
			Comments: 42,
			Date:     "2025-06-01",
			Products: entities.CloneProducts([]entities.Product{p[0], p[3]}),
			Tags:     []string{"SpringStyle", "ColorAnalysis", "GlowynApp"},
			IsLiked:  true,
		},
		{
			ID:       "post-2",
			User:     users[1],
			ImageURL: photo("photo-1515886657613-9f3515b0c78f"),
			Caption:  "Just discovered my face shape is heart-shaped! Now I know which hairstyles work best for me. #FaceShapeAnalysis",
			Likes:    892,
			Comments: 36,
			Date:     "2025-05-28",
			Products: entities.CloneProducts([]entities.Product{p[2]}),
			Tags:     []string{"FaceShape", "BeautyTips", "GlowynApp"},
			IsSaved:  true,
		},
		{
			ID:       "post-3",
			User:     users[2],
			ImageURL: photo("photo-1550928431-ee0ec6db30d3"),
			Caption:  "My skin analysis showed I have combination skin. Following the recommended routine and already seeing improvements! #SkinCare",
			Likes:    754,
			Comments: 28,
			Date:     "2025-05-25",
			Products: entities.CloneProducts([]entities.Product{p[1]}),
			Tags:     []string{"SkinCare", "BeautyRoutine", "GlowynApp"},
			IsLiked:  true,
		},
		{
			ID:       "post-4",
			User:     CurrentUser(),
			ImageURL: photo("photo-1487412720507-e7ab37603c6f"),
			Caption:  "Trying out my new style recommendations from Glowyn. What do you think? #StyleAnalysis #NewLook",
			Likes:    423,
			Comments: 19,
			Date:     "2025-05-20",
			Products: entities.CloneProducts([]entities.Product{p[3]}),
			Tags:     []string{"StyleAnalysis", "FashionTips", "GlowynApp"},
		},
	}
}

// PostComments holds the downloaded comments per post id, newest first.
func PostComments() map[string][]entities.Comment {
	users := PopularUsers()
	me := CurrentUser()
	return map[string][]entities.Comment{
		"post-1": {
			{ID: "comment-1-1", User: users[1], Text: "That coral shade is perfect for you!", Date: "2025-06-01", Likes: 24},
			{ID: "comment-1-2", User: users[2], Text: "I need to try that lipstick! 😍", Date: "2025-06-01", Likes: 18},
			{ID: "comment-1-3", User: me, Text: "Your color analysis is spot on!", Date: "2025-06-02", Likes: 12},
		},
		"post-2": {
			{ID: "comment-2-1", User: users[0], Text: "I have a heart-shaped face too! Those earrings look amazing on you.", Date: "2025-05-28", Likes: 15},
			{ID: "comment-2-2", User: me, Text: "Love your hairstyle! Perfect for your face shape.", Date: "2025-05-29", Likes: 9},
		},
	}
}
