package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	p1 := String(`vin-1HGCM826`)
	p2 := Int(123)
	p3 := Int32(4567)
	p4 := Int64(1_000_00)
	p5 := Float32(18.5)
	p6 := Float64(99999.99)
	p7 := Bool(true)

	s.Equal(*p1, `vin-1HGCM826`)
	s.Equal(*p2, int(123))
	s.Equal(*p3, int32(4567))
	s.Equal(*p4, int64(1_000_00))
	s.Equal(*p5, float32(18.5))
	s.Equal(*p6, float64(99999.99))
	s.Equal(*p7, true)
}

func TestReflectSuite(t *testing.T) {
	rs := new(pointerSuite)
	suite.Run(t, rs)
}
