package catalog

import "github.com/samdwyer/mazegen/internal/maze"

// UniquesFile represents the structure of uniques.json.
type UniquesFile struct {
	Uniques []maze.UniqueTile `json:"uniques"`
}

// DetailsFile represents the structure of details.json.
type DetailsFile struct {
	Wall  []maze.DetailDef `json:"wall"`
	Floor []maze.DetailDef `json:"floor"`
}

// LoadUniqueTiles loads unique tile descriptors from uniques.json.
func LoadUniqueTiles() ([]maze.UniqueTile, error) {
	file, err := Load[UniquesFile]("uniques.json")
	if err != nil {
		return nil, err
	}
	return file.Uniques, nil
}

// LoadDetails loads wall and floor detail definitions from details.json.
func LoadDetails() (wall, floor []maze.DetailDef, err error) {
	file, err := Load[DetailsFile]("details.json")
	if err != nil {
		return nil, nil, err
	}
	return file.Wall, file.Floor, nil
}
