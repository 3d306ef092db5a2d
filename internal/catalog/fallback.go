package catalog

import (
	"strconv"

	"github.com/vmunix/frameflux/internal/content"
)

// DefaultIDs is the curated home page selection.
var DefaultIDs = []string{
	"tt1375666",  // Inception
	"tt0133093",  // The Matrix
	"tt0816692",  // Interstellar
	"tt6751668",  // Parasite
	"tt0468569",  // The Dark Knight
	"tt0110912",  // Pulp Fiction
	"tt0109830",  // Forrest Gump
	"tt0120737",  // The Lord of the Rings: The Fellowship of the Ring
	"tt0245429",  // Spirited Away
	"tt0068646",  // The Godfather
	"tt2560140",  // Attack on Titan
	"tt0877057",  // Death Note
	"tt1355642",  // Fullmetal Alchemist: Brotherhood
	"tt4508902",  // One Punch Man
	"tt0988824",  // Naruto: Shippuden
	"tt5311514",  // Your Name
	"tt9335498",  // Demon Slayer
	"tt12343534", // Jujutsu Kaisen
	"tt0213338",  // Cowboy Bebop
	"tt1910272",  // Steins;Gate
	"tt0903747",  // Breaking Bad
	"tt4574334",  // Stranger Things
}

type fallbackTitle struct {
	title       string
	description string
	typ         content.Type
}

var fallbackTitles = []fallbackTitle{
	{"Inception", "A thief who steals corporate secrets through the use of dream-sharing technology is given the inverse task of planting an idea into the mind of a C.E.O.", content.TypeMovie},
	{"The Matrix", "A computer hacker learns from mysterious rebels about the true nature of his reality and his role in the war against its controllers.", content.TypeMovie},
	{"Interstellar", "A team of explorers travel through a wormhole in space in an attempt to ensure humanity's survival.", content.TypeMovie},
	{"Parasite", "Greed and class discrimination threaten the newly formed symbiotic relationship between the wealthy Park family and the destitute Kim clan.", content.TypeMovie},
	{"The Dark Knight", "When the menace known as the Joker wreaks havoc and chaos on the people of Gotham, Batman must accept one of the greatest psychological and physical tests of his ability to fight injustice.", content.TypeMovie},
	{"Pulp Fiction", "The lives of two mob hitmen, a boxer, a gangster and his wife, and a pair of diner bandits intertwine in four tales of violence and redemption.", content.TypeMovie},
	{"Forrest Gump", "The presidencies of Kennedy and Johnson, the Vietnam War, the Watergate scandal and other historical events unfold from the perspective of an Alabama man with an IQ of 75, whose only desire is to be reunited with his childhood sweetheart.", content.TypeMovie},
	{"The Lord of the Rings: The Fellowship of the Ring", "A meek Hobbit from the Shire and eight companions set out on a journey to destroy the powerful One Ring and save Middle-earth from the Dark Lord Sauron.", content.TypeMovie},
	{"Spirited Away", "During her family's move to the suburbs, a sullen 10-year-old girl wanders into a world ruled by gods, witches, and spirits, and where humans are changed into beasts.", content.TypeMovie},
	{"The Godfather", "The aging patriarch of an organized crime dynasty transfers control of his clandestine empire to his reluctant son.", content.TypeMovie},
	{"Attack on Titan", "After his hometown is destroyed and his mother is killed, young Eren Yeager vows to cleanse the earth of the giant humanoid Titans that have brought humanity to the brink of extinction.", content.TypeAnime},
	{"Death Note", "An intelligent high school student goes on a secret crusade to eliminate criminals from the world after discovering a notebook that can kill anyone whose name is written in it.", content.TypeAnime},
	{"Fullmetal Alchemist: Brotherhood", "Two brothers search for a Philosopher's Stone after an attempt to revive their deceased mother goes awry and leaves them in damaged physical forms.", content.TypeAnime},
	{"One Punch Man", "The story of Saitama, a hero that does it just for fun & can defeat enemies with a single punch.", content.TypeAnime},
	{"Naruto: Shippuden", "Naruto Uzumaki, is a loud, hyperactive, adolescent ninja who constantly searches for approval and recognition, as well as to become Hokage, who is acknowledged as the leader and strongest of all ninja in the village.", content.TypeAnime},
	{"Your Name", "Two strangers find themselves linked in a bizarre way. When a connection forms, will distance be the only thing to keep them apart?", content.TypeAnime},
	{"Demon Slayer", "A family is attacked by demons and only two members survive - Tanjiro and his sister Nezuko, who is turning into a demon slowly. Tanjiro sets out to become a demon slayer to avenge his family and cure his sister.", content.TypeAnime},
	{"Jujutsu Kaisen", "A boy swallows a cursed talisman - the finger of a demon - and becomes cursed himself. He enters a shaman's school to be able to locate the demon's other body parts and thus exorcise himself.", content.TypeAnime},
	{"Cowboy Bebop", "The futuristic misadventures and tragedies of an easygoing bounty hunter and his partners.", content.TypeAnime},
	{"Steins;Gate", "A group of friends have customized their microwave so that it can send text messages to the past. As they perform different experiments, an organization named SERN who has been doing their own research on time travel tracks them down and now the friends have to find a way to avoid being captured by them.", content.TypeAnime},
}

var fallbackGenres = map[content.Type][]string{
	content.TypeMovie: {"Sci-Fi", "Action", "Drama", "Crime", "Adventure", "Fantasy", "Animation"},
	content.TypeAnime: {"Action", "Shounen", "Fantasy", "Thriller", "Sci-Fi", "Drama", "Supernatural", "Mystery"},
}

// Fallback returns the built-in dataset served when the metadata APIs are
// unavailable. Every call returns fresh values.
//
// Ratings, years and durations are derived from the position in the list so
// the dataset is stable across runs: stars fall in 4.0-5.0, movies run
// 110-180 minutes and anime 90-150.
func Fallback() []*content.Item {
	items := make([]*content.Item, len(fallbackTitles))
	for i, ft := range fallbackTitles {
		genres := fallbackGenres[ft.typ]
		duration := 90 + (i*23)%61
		if ft.typ == content.TypeMovie {
			duration = 110 + (i*37)%71
		}
		items[i] = &content.Item{
			ID:          strconv.Itoa(i + 1),
			Title:       ft.title,
			Description: ft.description,
			Type:        ft.typ,
			Genres: []string{
				genres[i%len(genres)],
				genres[(i+1)%len(genres)],
			},
			Year:            2024 - i%15,
			Rating:          content.Rating(8 + float64((i*7)%11)/5),
			ImageURL:        content.PlaceholderSearchPoster,
			Slug:            Slugify(ft.title),
			DurationMinutes: duration,
		}
	}
	return items
}
