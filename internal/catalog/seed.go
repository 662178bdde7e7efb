// Lonestar - Streaming Catalog and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lonestar

package catalog

import "github.com/tomtom215/lonestar/internal/models"

// Seed returns the compiled-in catalog. Order matters: every filtered row
// preserves this order.
func Seed() []models.ContentItem {
	return []models.ContentItem{
		{
			ID:          "lib1",
			Title:       "Monrovia Rising",
			Description: "A young entrepreneur rebuilds her family business on Broad Street after the rainy season floods.",
			Thumbnail:   "https://images.lonestar.example/lib1/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib1/banner.jpg",
			Category:    "Drama",
			Rating:      models.RatingPG13,
			Year:        2024,
			Duration:    "1h 52m",
			IsFeatured:  true,
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			Cast:        "Korto Davies, Emmanuel Togba",
			Director:    "Patience Kollie",
		},
		{
			ID:          "lib2",
			Title:       "The Pepper Coast",
			Description: "Six-part series following three families along Liberia's historic coastline.",
			Thumbnail:   "https://images.lonestar.example/lib2/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib2/banner.jpg",
			Category:    "History",
			Rating:      models.RatingPG,
			Year:        2023,
			Duration:    "6 episodes",
			IsFeatured:  true,
			Type:        models.TypeSeries,
			Episodes: []models.Episode{
				{ID: "lib2e1", Title: "Landing at Providence Island", Description: "The settlers arrive.", Thumbnail: "https://images.lonestar.example/lib2/e1.jpg", Duration: "42m", VideoURL: "https://youtu.be/9bZkp7q19f0", EpisodeNumber: 1},
				{ID: "lib2e2", Title: "The Lone Star Rises", Description: "A flag and a constitution.", Thumbnail: "https://images.lonestar.example/lib2/e2.jpg", Duration: "44m", VideoURL: "https://youtu.be/kJQP7kiw5Fk", EpisodeNumber: 2},
			},
		},
		{
			ID:          "lib3",
			Title:       "Liberian History: 1847",
			Description: "Documentary on the declaration of independence and the first republic in Africa.",
			Thumbnail:   "https://images.lonestar.example/lib3/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib3/banner.jpg",
			Category:    "Documentary",
			Rating:      models.RatingG,
			Year:        2022,
			Duration:    "1h 15m",
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/embed/M7lc1UVf-VE",
		},
		{
			ID:          "lib4",
			Title:       "L-Pop Sessions",
			Description: "Studio performances from the biggest names in Liberian pop music.",
			Thumbnail:   "https://images.lonestar.example/lib4/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib4/banner.jpg",
			Category:    "Music",
			Rating:      models.RatingG,
			Year:        2025,
			Duration:    "24m",
			IsNew:       true,
			Type:        models.TypeMusicVideo,
			VideoURL:    "https://www.youtube.com/watch?v=3JZ_D3ELwOQ",
		},
		{
			ID:          "lib5",
			Title:       "Red Light Market",
			Description: "A gritty thriller set in Paynesville's sprawling market district.",
			Thumbnail:   "https://images.lonestar.example/lib5/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib5/banner.jpg",
			Category:    "Thriller",
			Rating:      models.RatingR,
			Year:        2024,
			Duration:    "2h 05m",
			IsFeatured:  true,
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/watch?v=L_jWHffIx5E",
			Director:    "Moses Varney",
		},
		{
			ID:          "lib6",
			Title:       "Kpelle Tales",
			Description: "Animated folk stories for children, narrated in English and Kpelle.",
			Thumbnail:   "https://images.lonestar.example/lib6/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib6/banner.jpg",
			Category:    "Kids",
			Rating:      models.RatingG,
			Year:        2023,
			Duration:    "8 episodes",
			Type:        models.TypeSeries,
		},
		{
			ID:          "lib7",
			Title:       "Sapo National Park",
			Description: "Wildlife documentary inside Liberia's largest protected rainforest.",
			Thumbnail:   "https://images.lonestar.example/lib7/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib7/banner.jpg",
			Category:    "Documentary",
			Rating:      models.RatingG,
			Year:        2025,
			Duration:    "58m",
			IsNew:       true,
			Type:        models.TypeMovie,
			VideoURL:    "https://youtu.be/e-ORhEE9VVg",
		},
		{
			ID:          "lib8",
			Title:       "Hipco Nation",
			Description: "The rise of hipco, Liberia's homegrown rap movement, told by its pioneers.",
			Thumbnail:   "https://images.lonestar.example/lib8/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib8/banner.jpg",
			Category:    "Music",
			Rating:      models.RatingPG13,
			Year:        2024,
			Duration:    "1h 30m",
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/watch?v=fJ9rUzIMcZQ",
		},
		{
			ID:          "lib9",
			Title:       "Liberian History: The Iron Roads",
			Description: "How the Bong and Nimba iron ranges shaped a century of Liberian history.",
			Thumbnail:   "https://images.lonestar.example/lib9/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib9/banner.jpg",
			Category:    "Documentary",
			Rating:      models.RatingPG,
			Year:        2023,
			Duration:    "1h 22m",
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/watch?v=2Vv-BfVoq4g",
		},
		{
			ID:          "lib10",
			Title:       "Waves of Robertsport",
			Description: "Surf series following the fishing town that became West Africa's surf capital.",
			Thumbnail:   "https://images.lonestar.example/lib10/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib10/banner.jpg",
			Category:    "Sports",
			Rating:      models.RatingPG,
			Year:        2025,
			Duration:    "4 episodes",
			IsNew:       true,
			IsFeatured:  true,
			Type:        models.TypeSeries,
		},
		{
			ID:          "lib11",
			Title:       "Palava Hut",
			Description: "Comedy about a village council that settles everything except its own disputes.",
			Thumbnail:   "https://images.lonestar.example/lib11/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib11/banner.jpg",
			Category:    "Comedy",
			Rating:      models.RatingPG,
			Year:        2024,
			Duration:    "1h 40m",
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/watch?v=ktvTqknDobU",
		},
		{
			ID:          "lib12",
			Title:       "Night Run Monrovia",
			Description: "A taxi driver's single night shift spirals through the capital's underworld.",
			Thumbnail:   "https://images.lonestar.example/lib12/thumb.jpg",
			Banner:      "https://images.lonestar.example/lib12/banner.jpg",
			Category:    "Thriller",
			Rating:      models.RatingR,
			Year:        2025,
			Duration:    "1h 48m",
			IsNew:       true,
			Type:        models.TypeMovie,
			VideoURL:    "https://www.youtube.com/watch?v=09R8_2nJtjg",
		},
	}
}
