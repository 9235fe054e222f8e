package galaxylife

import "github.com/jose-valero/galaxylife-bot/internal/domain"

// --- Status ---
type serverStatusDTO struct {
	Name     string `json:"name"`
	IsOnline bool   `json:"isOnline"`
	Ping     int    `json:"ping"`
}

// --- Users ---
type userDTO struct {
	ID         string `json:"Id"`
	Name       string `json:"Name"`
	Avatar     string `json:"Avatar"`
	Level      int    `json:"Level"`
	Experience int64  `json:"Experience"`
	Online     bool   `json:"Online"`
	AllianceID string `json:"AllianceId"`
	Planets    []*struct {
		HQLevel int `json:"HQLevel"`
	} `json:"Planets"`
}

func (d userDTO) toDomain() *domain.User {
	u := &domain.User{
		ID:         d.ID,
		Name:       d.Name,
		Avatar:     d.Avatar,
		Level:      d.Level,
		Experience: d.Experience,
		Online:     d.Online,
		AllianceID: d.AllianceID,
		Planets:    make([]*domain.Planet, len(d.Planets)),
	}
	for i, p := range d.Planets {
		if p != nil {
			u.Planets[i] = &domain.Planet{HQLevel: p.HQLevel}
		}
	}
	return u
}

type userStatsDTO struct {
	PlayersAttacked   int64 `json:"PlayersAttacked"`
	NpcsAttacked      int64 `json:"NpcsAttacked"`
	CoinsSpent        int64 `json:"CoinsSpent"`
	MineralsSpent     int64 `json:"MineralsSpent"`
	FriendsHelped     int64 `json:"FriendsHelped"`
	GiftsReceived     int64 `json:"GiftsReceived"`
	GiftsSent         int64 `json:"GiftsSent"`
	TotalPlayTimeInMs int64 `json:"TotalPlayTimeInMs"`
	NukesUsed         int64 `json:"NukesUsed"`
	ObstaclesRecycled int64 `json:"ObstaclesRecycled"`
	TroopsTrained     int64 `json:"TroopsTrained"`
	TroopSizesDonated int64 `json:"TroopSizesDonated"`
}

// --- Alliances ---

// en la API: 0 = leader, 1 = admin (captain), 2 = regular
type allianceMemberDTO struct {
	ID           string `json:"Id"`
	Name         string `json:"Name"`
	AllianceRole int    `json:"AllianceRole"`
}

func roleFromAPI(r int) domain.AllianceRole {
	switch r {
	case 0:
		return domain.RoleLeader
	case 1:
		return domain.RoleAdmin
	default:
		return domain.RoleRegular
	}
}

type allianceDTO struct {
	ID            string `json:"Id"`
	Name          string `json:"Name"`
	AllianceLevel int    `json:"AllianceLevel"`
	WarPoints     int64  `json:"WarPoints"`
	WarsWon       int    `json:"WarsWon"`
	WarsLost      int    `json:"WarsLost"`
	Emblem        struct {
		Shape   int `json:"Shape"`
		Pattern int `json:"Pattern"`
		Icon    int `json:"Icon"`
	} `json:"Emblem"`
	Members []allianceMemberDTO `json:"Members"`
}

func (d allianceDTO) toDomain() *domain.Alliance {
	a := &domain.Alliance{
		ID:            d.ID,
		Name:          d.Name,
		AllianceLevel: d.AllianceLevel,
		WarPoints:     d.WarPoints,
		WarsWon:       d.WarsWon,
		WarsLost:      d.WarsLost,
		Emblem:        domain.Emblem{Shape: d.Emblem.Shape, Pattern: d.Emblem.Pattern, Icon: d.Emblem.Icon},
		Members:       make([]domain.AllianceMember, 0, len(d.Members)),
	}
	for _, m := range d.Members {
		a.Members = append(a.Members, domain.AllianceMember{ID: m.ID, Name: m.Name, Role: roleFromAPI(m.AllianceRole)})
	}
	return a
}

// --- Leaderboards ---
type playerLbDTO struct {
	ID         string `json:"Id"`
	Name       string `json:"Name"`
	Level      int    `json:"Level"`
	Experience int64  `json:"Experience"`
}

type allianceLbDTO struct {
	Name          string `json:"Name"`
	AllianceLevel int    `json:"AllianceLevel"`
	WarPoints     int64  `json:"WarPoints"`
}
