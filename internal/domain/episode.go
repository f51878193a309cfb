package domain

type Episode struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	AirDate       string `json:"airDate"`
	SeasonEpisode string `json:"seasonEpisode"`
	CharacterIDs  []int  `json:"characterIds"`
	Created       string `json:"created"`
}

type EpisodePage struct {
	Info     PageInfo  `json:"info"`
	Episodes []Episode `json:"episodes"`
}
