package streams

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/onsi/gomega"
)

func Test_FromSlice_Slice(t *testing.T) {
	RegisterTestingT(t)

	result, err := FromSlice([]int{1, 2, 3}).Slice()

	Expect(err).Should(BeNil())
	Expect(result).Should(Equal([]int{1, 2, 3}))
}

func Test_Map(t *testing.T) {
	RegisterTestingT(t)

	result, err := Map(FromSlice([]int{1, 2, 3}), strconv.Itoa).Slice()

	Expect(err).Should(BeNil())
	Expect(result).Should(Equal([]string{"1", "2", "3"}))
}

func Test_Generate_ProducerError(t *testing.T) {
	RegisterTestingT(t)

	cause := errors.New("producer broke")
	s := Generate(func(sink func(data int)) error {
		sink(1)
		sink(2)
		return cause
	})

	result, err := s.Slice()

	Expect(result).Should(BeNil())
	Expect(err).Should(Equal(cause))
}

func Test_Map_PropagatesError(t *testing.T) {
	RegisterTestingT(t)

	cause := errors.New("upstream broke")
	s := Generate(func(sink func(data int)) error {
		sink(1)
		return cause
	})

	_, err := Map(s, func(data int) int { return data * 10 }).Slice()

	Expect(err).Should(Equal(cause))
}

func Test_ForEach_CallbackError(t *testing.T) {
	RegisterTestingT(t)

	stop := errors.New("stop")
	seen := 0
	err := FromSlice([]int{1, 2, 3}).ForEach(func(data int) error {
		seen++
		if data == 2 {
			return stop
		}
		return nil
	})

	Expect(err).Should(Equal(stop))
	Expect(seen).Should(Equal(2))
}
