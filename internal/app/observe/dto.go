package observe

// Request selects the tile rectangle to project, in tile coordinates. A
// non-positive width or height means the whole world.
type Request struct {
	X      int
	Y      int
	Width  int
	Height int
}

type Response struct {
	Player            PlayerDTO     `json:"player"`
	Creatures         []CreatureDTO `json:"creatures"`
	TimeOfDay         float64       `json:"time_of_day"`
	DayFraction       float64       `json:"day_fraction"`
	Weather           string        `json:"weather,omitempty"`
	Paused            bool          `json:"paused"`
	BuildMode         bool          `json:"build_mode"`
	SelectedStructure string        `json:"selected_structure"`
	World             WorldMeta     `json:"world"`
	Tiles             []TileDTO     `json:"tiles"`
}

type PlayerDTO struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Health   float64   `json:"health"`
	Hunger   float64   `json:"hunger"`
	Thirst   float64   `json:"thirst"`
	Stamina  float64   `json:"stamina"`
	Equipped string    `json:"equipped,omitempty"`
	Items    []ItemDTO `json:"items"`
}

type ItemDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}

type CreatureDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health float64 `json:"health"`
	Radius float64 `json:"radius"`
	State  string  `json:"state"`
}

type WorldMeta struct {
	Width    int `json:"width"`
	Height   int `json:"height"`
	TileSize int `json:"tile_size"`
}

type TileDTO struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Kind     string `json:"kind"`
	Resource string `json:"resource,omitempty"`
	Amount   int    `json:"amount,omitempty"`
	Built    string `json:"built,omitempty"`
}
