package teams

// rawTable lists SofaScore team ids in download order.
//
// 2829 appears twice (Barcelona, then Celtic). The later name wins, so
// Barcelona's logo is fetched under Celtic's name. Celtic needs its own id.
var rawTable = []Entry{
	// Premier League
	{17, "Manchester City"},
	{18, "Manchester United"},
	{19, "Chelsea"},
	{20, "Liverpool"},
	{21, "Arsenal"},
	{22, "Tottenham"},
	{33, "Newcastle United"},
	{34, "Brighton"},
	{38, "Aston Villa"},

	// La Liga
	{2829, "Barcelona"},
	{2817, "Real Madrid"},
	{2833, "Atletico Madrid"},
	{2836, "Sevilla"},
	{2885, "Real Betis"},

	// Bundesliga
	{2672, "Bayern Munich"},
	{2673, "Borussia Dortmund"},
	{2674, "RB Leipzig"},
	{2681, "Bayer Leverkusen"},

	// Serie A
	{2697, "Juventus"},
	{2692, "Inter Milan"},
	{2687, "AC Milan"},
	{2714, "Napoli"},
	{2702, "AS Roma"},

	// Ligue 1
	{1644, "PSG"},
	{1649, "Marseille"},
	{1648, "Lyon"},

	// Other top clubs
	{2948, "Ajax"},
	{2920, "Porto"},
	{2935, "Benfica"},
	{2829, "Celtic"},
}
