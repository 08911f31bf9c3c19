package parallel

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sedmess/go-collectors/maps"
)

type sample struct {
	key   string
	value int
}

func sampleKey(s sample) string { return s.key }
func sampleValue(s sample) int  { return s.value }

func makeSamples(n int, distinctKeys int) []sample {
	source := make([]sample, 0, n)
	for i := 0; i < n; i++ {
		source = append(source, sample{key: strconv.Itoa(i % distinctKeys), value: i})
	}
	return source
}

func Test_CollectValues_MatchesSequential(t *testing.T) {
	RegisterTestingT(t)

	source := makeSamples(200, 13)

	for _, policy := range []maps.MergePolicy{maps.KeepFirst, maps.KeepLast} {
		sequential := maps.CollectValues(source, sampleKey, sampleValue, policy)

		for _, chunkSize := range []int{1, 3, 7, 64, 1000} {
			for _, limit := range []int{1, 4} {
				result := CollectValues(source, chunkSize, limit, sampleKey, sampleValue, policy)
				Expect(result).Should(Equal(sequential), "policy %v chunkSize %d limit %d", policy, chunkSize, limit)
			}
		}
	}
}

func Test_Collect_EmptySource(t *testing.T) {
	RegisterTestingT(t)

	Expect(Collect(nil, 8, 4, sampleKey, maps.KeepFirst)).Should(Equal(map[string]sample{}))
	Expect(Collect([]sample{}, 8, 4, sampleKey, maps.KeepLast)).Should(Equal(map[string]sample{}))
}

func Test_TryCollectValues_NoFailure(t *testing.T) {
	RegisterTestingT(t)

	source := makeSamples(50, 5)
	keyFn := func(s sample) (string, error) { return s.key, nil }
	valueFn := func(s sample) (int, error) { return s.value, nil }

	result, err := TryCollectValues(source, 7, 4, keyFn, valueFn, maps.KeepLast)

	Expect(err).Should(BeNil())
	Expect(result).Should(Equal(maps.CollectValues(source, sampleKey, sampleValue, maps.KeepLast)))
}

func Test_TryCollectValues_FailureWins(t *testing.T) {
	RegisterTestingT(t)

	cause := errors.New("poisoned element")
	source := makeSamples(50, 5)
	keyFn := func(s sample) (string, error) {
		if s.value == 23 || s.value == 41 {
			return "", cause
		}
		return s.key, nil
	}
	valueFn := func(s sample) (int, error) { return s.value, nil }

	result, err := TryCollectValues(source, 7, 4, keyFn, valueFn, maps.KeepFirst)

	Expect(result).Should(BeNil())
	Expect(errors.Is(err, cause)).Should(BeTrue())

	// element 23 fails in an earlier chunk than element 41
	var keyErr *maps.KeyMappingError
	Expect(errors.As(err, &keyErr)).Should(BeTrue())
	Expect(keyErr.Index).Should(Equal(23))
}
