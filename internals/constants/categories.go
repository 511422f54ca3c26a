package constants

// Fixed category set for book listings. Kept in one place so the
// controllers and seed data agree on the allowed values.
var CategoryOptions = []string{
	"Programming",
	"Networking",
	"DBMS",
	"AI",
	"Maths",
	"OS",
	"Deep Learning",
	"Other",
}

func IsValidCategory(category string) bool {
	for _, c := range CategoryOptions {
		if c == category {
			return true
		}
	}
	return false
}

const DefaultUserRole = "user"
