package domain

// ServerStatus es el estado de un servidor flash del juego.
type ServerStatus struct {
	Name     string
	IsOnline bool
	Ping     int
}

type Planet struct {
	HQLevel int
}

// User es el perfil público de un jugador.
type User struct {
	ID         string
	Name       string
	Avatar     string
	Level      int
	Experience int64
	Online     bool
	AllianceID string
	// Planets[0] es el starbase; los nil son slots de colonia vacíos.
	Planets []*Planet
}

// InAlliance: la API devuelve "" o "None" cuando no tiene alianza.
func (u *User) InAlliance() bool {
	return u.AllianceID != "" && u.AllianceID != "None"
}

// Colonies cuenta planetas ocupados sin el starbase.
func (u *User) Colonies() int {
	n := 0
	for _, p := range u.Planets {
		if p != nil {
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return n - 1
}

func (u *User) StarbaseLevel() int {
	if len(u.Planets) == 0 || u.Planets[0] == nil {
		return 0
	}
	return u.Planets[0].HQLevel
}

type UserStats struct {
	PlayersAttacked   int64
	NpcsAttacked      int64
	CoinsSpent        int64
	MineralsSpent     int64
	FriendsHelped     int64
	GiftsReceived     int64
	GiftsSent         int64
	TotalPlayTimeInMs int64
	NukesUsed         int64
	ObstaclesRecycled int64
	TroopsTrained     int64
	TroopSizesDonated int64
}

type AllianceRole int

const (
	RoleRegular AllianceRole = iota
	RoleAdmin
	RoleLeader
)

type AllianceMember struct {
	ID   string
	Name string
	Role AllianceRole
}

type Emblem struct {
	Shape   int
	Pattern int
	Icon    int
}

type Alliance struct {
	ID            string
	Name          string
	AllianceLevel int
	WarPoints     int64
	WarsWon       int
	WarsLost      int
	Emblem        Emblem
	Members       []AllianceMember
}

// LeaderboardEntry sirve tanto para jugadores (Value = xp) como para alianzas (Value = warpoints).
type LeaderboardEntry struct {
	Rank  int
	ID    string
	Name  string
	Level int
	Value int64
}
