package models

// Dog is a shelter dog as returned by the Fetch service.
type Dog struct {
	ID      string `json:"id"`
	Img     string `json:"img"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	ZipCode string `json:"zip_code"`
	Breed   string `json:"breed"`
}

// DogsByID indexes a batch of dogs by id. Batch responses are not guaranteed
// to keep the request order, so callers that need it look dogs up here.
func DogsByID(dogs []Dog) map[string]Dog {
	idx := make(map[string]Dog, len(dogs))
	for _, d := range dogs {
		idx[d.ID] = d
	}
	return idx
}

// Match is the body of a POST /dogs/match response.
type Match struct {
	Match string `json:"match"`
}
