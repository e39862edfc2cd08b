package fixtures

import (
	"github.com/STS-Engineer/back-pointeuse/internal/domain/roster"
)

// ==========================================
// DEFAULT ROSTER
// ==========================================

// DefaultRoster returns the site's known employees with the identifier the
// terminal was enrolled with (the "400"-prefixed alias). Used when no
// DATABASE_URL is configured and as seed data for tests.
func DefaultRoster() []roster.Employee {
	return []roster.Employee{
		{ID: 1, Code: "1", DisplayName: "Fethi Chaouachi", Aliases: []string{"40001"}},
		{ID: 2, Code: "2", DisplayName: "Hela ELghoul", Aliases: []string{"40002"}},
		{ID: 3, Code: "3", DisplayName: "Aziza Hamrouni", Aliases: []string{"40003"}},
		{ID: 5, Code: "5", DisplayName: "Hamdi Fhal", Aliases: []string{"40005"}},
		{ID: 6, Code: "6", DisplayName: "Nizar Gharsalli", Aliases: []string{"40006"}},
		{ID: 12, Code: "12", DisplayName: "Mohamed Firas Bellotef", Aliases: []string{"40012"}},
		{ID: 13, Code: "13", DisplayName: "Fatma Guermassi", Aliases: []string{"40013"}},
		{ID: 15, Code: "15", DisplayName: "Souhail Yaakoubi", Aliases: []string{"40015"}},
		{ID: 16, Code: "16", DisplayName: "Taha Khiari", Aliases: []string{"40016"}},
		{ID: 17, Code: "17", DisplayName: "Ahmed Ayadi", Aliases: []string{"40017"}},
		{ID: 18, Code: "18", DisplayName: "Amira Aydi", Aliases: []string{"40018"}},
		{ID: 19, Code: "19", DisplayName: "Motaz Farwa", Aliases: []string{"40019"}},
		{ID: 20, Code: "20", DisplayName: "Chaima Ben Yahia", Aliases: []string{"40020"}},
		{ID: 21, Code: "21", DisplayName: "Hedi Daizi", Aliases: []string{"40021"}},
		{ID: 24, Code: "24", DisplayName: "Hadil Sakouhi", Aliases: []string{"40024"}},
		{ID: 26, Code: "26", DisplayName: "Leila Mokni", Aliases: []string{"40026"}},
		{ID: 28, Code: "28", DisplayName: "Mohamed Rzig", Aliases: []string{"40028"}},
		{ID: 29, Code: "29", DisplayName: "Chiraz Ben Abbes", Aliases: []string{"40029"}},
		{ID: 30, Code: "30", DisplayName: "Yassine Chtiti", Aliases: []string{"40030"}},
		{ID: 33, Code: "33", DisplayName: "Manel Saad", Aliases: []string{"40033"}},
		{ID: 34, Code: "34", DisplayName: "Wala Ferchichi", Aliases: []string{"40034"}},
		{ID: 35, Code: "35", DisplayName: "Mohamed Laith Ben Mabrouk", Aliases: []string{"40035"}},
		{ID: 36, Code: "36", DisplayName: "Mohamed Baraketi", Aliases: []string{"40036"}},
		{ID: 37, Code: "37", DisplayName: "Sirine Khalfallah", Aliases: []string{"40037"}},
		{ID: 39, Code: "39", DisplayName: "Oumaya Bouni", Aliases: []string{"40039"}},
		{ID: 40, Code: "40", DisplayName: "Maher Elhaj", Aliases: []string{"40040"}},
		{ID: 41, Code: "41", DisplayName: "Moemen Ltifi", Aliases: []string{"40041"}},
		{ID: 42, Code: "42", DisplayName: "Majed Messai", Aliases: []string{"40042"}},
		{ID: 43, Code: "43", DisplayName: "Mohamed Baazaoui", Aliases: []string{"40043"}},
		{ID: 44, Code: "44", DisplayName: "Sami Benromdhan", Aliases: []string{"40044"}},
		{ID: 45, Code: "45", DisplayName: "Wassim Belhadjsalah", Aliases: []string{"40045"}},
		{ID: 46, Code: "46", DisplayName: "Emna Baroumi", Aliases: []string{"40046"}},
		{ID: 47, Code: "47", DisplayName: "Rami Mejri", Aliases: []string{"40047"}},
		{ID: 48, Code: "48", DisplayName: "Hayfa Rahji", Aliases: []string{"40048"}},
		{ID: 49, Code: "49", DisplayName: "Jihen Ben Yahmed", Aliases: []string{"40049"}},
		{ID: 50, Code: "50", DisplayName: "Elyes Khelili", Aliases: []string{"40050"}},
		{ID: 51, Code: "51", DisplayName: "Nour Sellami", Aliases: []string{"40051"}},
		{ID: 52, Code: "52", DisplayName: "Mohamed Mohsen Khefacha", Aliases: []string{"40052"}},
		{ID: 53, Code: "53", DisplayName: "Ranine Nouira", Aliases: []string{"40053"}},
		{ID: 54, Code: "54", DisplayName: "Rihem Arfaoui", Aliases: []string{"40054"}},
		{ID: 55, Code: "55", DisplayName: "Ons Ghariani", Aliases: []string{"40055"}},
		{ID: 56, Code: "56", DisplayName: "SIHEM DJERIDI", Aliases: []string{"40056"}},
	}
}
