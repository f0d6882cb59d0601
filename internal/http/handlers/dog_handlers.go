package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	repo "github.com/rogerio-castellano/dogfinder/internal/repo"
)

// BreedsHandler godoc
// @Summary List every breed
// @Tags dogs
// @Produce json
// @Success 200 {array} string
// @Failure 401 {string} string "Unauthorized"
// @Router /dogs/breeds [get]
func BreedsHandler(w http.ResponseWriter, r *http.Request) {
	breeds, err := dogRepo.Breeds(r.Context())
	if err != nil {
		logger.Error("could not fetch breeds", zap.Error(err))
		http.Error(w, "could not fetch breeds", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, breeds)
}

// SearchDogsHandler godoc
// @Summary Search dogs
// @Description Returns one page of matching dog ids plus cursors for the neighbouring pages.
// @Tags dogs
// @Produce json
// @Param breeds query []string false "breeds" collectionFormat(multi)
// @Param zipCodes query []string false "zip codes" collectionFormat(multi)
// @Param ageMin query int false "minimum age"
// @Param ageMax query int false "maximum age"
// @Param size query int false "page size (default 25)"
// @Param from query int false "cursor offset"
// @Param sort query string false "breed|name|age:asc|desc"
// @Success 200 {object} DogSearchResult
// @Failure 400 {string} string "Invalid query"
// @Router /dogs/search [get]
func SearchDogsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, size, from, err := parseDogQuery(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ids, total, err := dogRepo.Search(r.Context(), filter)
	if err != nil {
		logger.Error("dog search failed", zap.Error(err))
		http.Error(w, "could not search dogs", http.StatusInternalServerError)
		return
	}

	resp := DogSearchResult{ResultIDs: ids, Total: total}
	if from+size < min(total, MaxSearchWindow) {
		resp.Next = cursor(r.URL.Path, q, from+size)
	}
	if from > 0 {
		resp.Prev = cursor(r.URL.Path, q, max(from-size, 0))
	}
	respond(w, http.StatusOK, resp)
}

var (
	errBadNumber = errors.New("ageMin, ageMax, size and from must be non-negative integers")
	errWindow    = errors.New("from + size must not exceed 10000")
)

func parseDogQuery(q url.Values) (repo.DogFilter, int, int, error) {
	f := repo.DogFilter{Breeds: q["breeds"], ZipCodes: q["zipCodes"]}

	var err error
	if f.Sort, err = repo.ParseSort(q.Get("sort")); err != nil {
		return f, 0, 0, err
	}
	if f.AgeMin, err = optionalInt(q, "ageMin"); err != nil {
		return f, 0, 0, err
	}
	if f.AgeMax, err = optionalInt(q, "ageMax"); err != nil {
		return f, 0, 0, err
	}

	size, from := DefaultSearchSize, 0
	if v, err := optionalInt(q, "size"); err != nil {
		return f, 0, 0, err
	} else if v != nil && *v > 0 {
		size = *v
	}
	if v, err := optionalInt(q, "from"); err != nil {
		return f, 0, 0, err
	} else if v != nil {
		from = *v
	}
	if size > MaxSearchWindow || from > MaxSearchWindow-size {
		return f, 0, 0, errWindow
	}
	f.Offset, f.Limit = &from, &size
	return f, size, from, nil
}

func optionalInt(q url.Values, key string) (*int, error) {
	s := q.Get(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil, errBadNumber
	}
	return &v, nil
}

func cursor(path string, q url.Values, from int) string {
	next := url.Values{}
	for k, v := range q {
		next[k] = v
	}
	next.Set("from", strconv.Itoa(from))
	return path + "?" + next.Encode()
}

// GetDogsHandler godoc
// @Summary Fetch dogs by id
// @Tags dogs
// @Accept json
// @Produce json
// @Param ids body []string true "up to 100 dog ids"
// @Success 200 {array} models.Dog
// @Failure 400 {array} ValidationError
// @Router /dogs [post]
func GetDogsHandler(w http.ResponseWriter, r *http.Request) {
	ids, ok := readIDs(w, r)
	if !ok {
		return
	}
	dogs, err := dogRepo.GetByIDs(r.Context(), ids)
	if err != nil {
		logger.Error("dog batch failed", zap.Error(err))
		http.Error(w, "could not fetch dogs", http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, dogs)
}

// MatchHandler godoc
// @Summary Pick a match among favorite dogs
// @Tags dogs
// @Accept json
// @Produce json
// @Param ids body []string true "favorite dog ids"
// @Success 200 {object} MatchResult
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "No known dogs"
// @Router /dogs/match [post]
func MatchHandler(w http.ResponseWriter, r *http.Request) {
	ids, ok := readIDs(w, r)
	if !ok {
		return
	}
	dogs, err := dogRepo.GetByIDs(r.Context(), ids)
	if err != nil {
		logger.Error("match lookup failed", zap.Error(err))
		http.Error(w, "could not find a match", http.StatusInternalServerError)
		return
	}
	if len(dogs) == 0 {
		http.Error(w, "none of the given dogs exist", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, MatchResult{Match: dogs[rand.IntN(len(dogs))].ID})
}

func readIDs(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var req IDsRequest
	if err := readJSON(w, r, &req.IDs); err != nil {
		http.Error(w, "body must be a JSON array of strings", http.StatusBadRequest)
		return nil, false
	}
	if errs := validateRequest(req); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return nil, false
	}
	return req.IDs, true
}
