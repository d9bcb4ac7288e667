package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/YOHANEKUMWENDA/bookstore-application/internal/domain"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// seedCategories are the browsable storefront sections.
var seedCategories = []domain.Category{
	{Name: "Fiction"},
	{Name: "Non-Fiction"},
	{Name: "Romance"},
	{Name: "Mystery"},
	{Name: "Sci-Fi"},
	{Name: "Biography"},
}

// seedBooks is the launch catalog.
var seedBooks = []domain.Book{
	{
		ID:              1,
		Title:           "Forest Spirit",
		Author:          "F.BANDA",
		Price:           price("12.99"),
		Rating:          4.5,
		Category:        "Fiction",
		Description:     "A captivating story that explores the depths of human emotions and relationships in a small village. This compelling narrative takes readers on a journey through the complexities of family bonds, cultural traditions, and the pursuit of dreams.",
		Pages:           320,
		Language:        "English",
		Publisher:       "African Tales Publishing",
		PublicationYear: 2023,
		ISBN:            "978-1-234567-89-0",
		CoverURL:        "/covers/forest_spirit.jpg",
	},
	{
		ID:              2,
		Title:           "Free to Stay",
		Author:          "J.MUNTALI",
		Price:           price("14.99"),
		Rating:          4.8,
		Category:        "Romance",
		Description:     "A heartwarming romance that will make you believe in love again. Set against a beautiful backdrop, this story weaves together passion, sacrifice, and the power of true love that transcends all obstacles.",
		Pages:           342,
		Language:        "English",
		Publisher:       "Romance House",
		PublicationYear: 2024,
		ISBN:            "978-1-234567-90-6",
		CoverURL:        "/covers/free_to_stay.jpg",
	},
	{
		ID:              3,
		Title:           "Rose's Revenge",
		Author:          "George PHIRI",
		Price:           price("13.99"),
		Rating:          4.7,
		Category:        "Fiction",
		Description:     "An inspiring tale for young adults navigating the challenges of modern life. Through relatable characters and authentic dialogue, this book addresses the hopes, fears, and aspirations of today's youth.",
		Pages:           285,
		Language:        "English",
		Publisher:       "Youth Voices Press",
		PublicationYear: 2023,
		ISBN:            "978-1-234567-91-3",
		CoverURL:        "/covers/roses_revenge.jpg",
	},
	{
		ID:              4,
		Title:           "Survival",
		Author:          "JOSEPH KALUA",
		Price:           price("11.99"),
		Rating:          4.6,
		Category:        "Fiction",
		Description:     "A powerful narrative about personal development and overcoming adversity. Follow the protagonist's journey from humble beginnings to achieving their life goals through determination and resilience.",
		Pages:           298,
		Language:        "English",
		Publisher:       "Progress Publishers",
		PublicationYear: 2022,
		ISBN:            "978-1-234567-92-0",
		CoverURL:        "/covers/survival.jpg",
	},
	{
		ID:              5,
		Title:           "The Void",
		Author:          "PRINCE ALINAFE",
		Price:           price("12.49"),
		Rating:          4.3,
		Category:        "Non-Fiction",
		Description:     "An insightful exploration of what it means to live a meaningful life. Drawing from philosophy, psychology, and personal experiences, this book offers practical wisdom for finding purpose and happiness.",
		Pages:           256,
		Language:        "English",
		Publisher:       "Life Lessons Press",
		PublicationYear: 2023,
		ISBN:            "978-1-234567-93-7",
		CoverURL:        "/covers/the_void.jpg",
	},
	{
		ID:              6,
		Title:           "Walk Alone",
		Author:          "JOHN KUMWENDA",
		Price:           price("16.99"),
		Rating:          4.9,
		Category:        "Romance",
		Description:     "A touching story about the unconditional love between a mother and child. This emotional journey explores the sacrifices, joys, and challenges of motherhood while celebrating the strongest bond in human existence.",
		Pages:           368,
		Language:        "English",
		Publisher:       "CLAIM MALAWI Inc",
		PublicationYear: 2024,
		ISBN:            "978-1-234567-95-1",
		CoverURL:        "/covers/walk_alone.jpg",
	},
	{
		ID:              7,
		Title:           "Visions of Tomorrow",
		Author:          "ISAIC MFUNE",
		Price:           price("15.99"),
		Rating:          4.7,
		Category:        "Non-Fiction",
		Description:     "A guide for young adults navigating their twenties. Packed with practical advice on career, relationships, finances, and personal growth, this book is a roadmap for making the most of this crucial decade.",
		Pages:           310,
		Language:        "English",
		Publisher:       "MALAWI BOOKS ASSOC.",
		PublicationYear: 2023,
		ISBN:            "978-1-234567-96-8",
		CoverURL:        "/covers/visions_of_tomorrow.jpg",
	},
	{
		ID:              8,
		Title:           "Zero One",
		Author:          "DR EPHRAIM JOHN",
		Price:           price("14.99"),
		Rating:          4.8,
		Category:        "Non-Fiction",
		Description:     "A powerful memoir about the transformative power of education. This inspiring story follows a journey from limited opportunities to academic excellence, demonstrating that knowledge truly is liberation.",
		Pages:           334,
		Language:        "English",
		Publisher:       "Educational Press",
		PublicationYear: 2025,
		ISBN:            "978-1-234567-97-5",
		CoverURL:        "/covers/zero_one.jpg",
	},
	{
		ID:              9,
		Title:           "Where You Left Us",
		Author:          "GRACE MSISKA",
		Price:           price("15.49"),
		Rating:          4.6,
		Category:        "Biography",
		Description:     "The inspiring biography of a pioneer in Human-Computer Interaction. Learn about the challenges, breakthroughs, and vision that shaped modern technology and made computers accessible to everyone.",
		Pages:           289,
		Language:        "English",
		Publisher:       "Tech Biographies",
		PublicationYear: 2023,
		ISBN:            "978-1-234567-98-2",
		CoverURL:        "/covers/where_you_left_us.jpg",
	},
	{
		ID:              10,
		Title:           "Self Help",
		Author:          "SARAH MWALE",
		Price:           price("13.99"),
		Rating:          4.6,
		Category:        "Mystery",
		Description:     "A gripping mystery thriller that will keep you guessing until the very end. When secrets from the past resurface, a detective must unravel a web of lies to discover the truth hidden in plain sight.",
		Pages:           345,
		Language:        "English",
		Publisher:       "Mystery House",
		PublicationYear: 2024,
		ISBN:            "978-1-234567-99-9",
		CoverURL:        "/covers/self_help.jpg",
	},
	{
		ID:              11,
		Title:           "Zero One",
		Author:          "MIKE BANDA",
		Price:           price("15.49"),
		Rating:          4.7,
		Category:        "Sci-Fi",
		Description:     "An epic science fiction adventure set in the distant future. Humanity has reached the stars, but new challenges await. Explore alien worlds, advanced technology, and the eternal question of what it means to be human.",
		Pages:           412,
		Language:        "English",
		Publisher:       "Future Fiction",
		PublicationYear: 2024,
		ISBN:            "978-1-234567-00-5",
		CoverURL:        "/covers/zero_one_scifi.jpg",
	},
	{
		ID:              12,
		Title:           "Rising from the Ashes",
		Author:          "DANIEL PHIRI",
		Price:           price("14.99"),
		Rating:          4.8,
		Category:        "Biography",
		Description:     "The remarkable true story of resilience and triumph over adversity. This biography chronicles one person's journey from devastating loss to building a life of purpose and impact.",
		Pages:           356,
		Language:        "English",
		Publisher:       "Life Stories Publishing",
		PublicationYear: 2024,
		ISBN:            "978-1-234567-01-2",
		CoverURL:        "/covers/rising_from_the_ashes.jpg",
	},
}
