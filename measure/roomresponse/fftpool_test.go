package roomresponse

import "testing"

func TestGetComplexScratchReturnsZeroedBuffer(t *testing.T) {
	buf, handle := getComplexScratch(8)
	if len(buf) != 8 {
		t.Fatalf("len(buf) = %d, want 8", len(buf))
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
	putComplexScratch(handle)
}

func TestGetComplexScratchReusesAndZeroesDirtyBuffer(t *testing.T) {
	buf, handle := getComplexScratch(16)
	for i := range buf {
		buf[i] = complex(float64(i+1), 0)
	}
	putComplexScratch(handle)

	buf2, handle2 := getComplexScratch(16)
	for i, v := range buf2 {
		if v != 0 {
			t.Fatalf("reused buf2[%d] = %v, want 0 (pool must clear before reuse)", i, v)
		}
	}
	putComplexScratch(handle2)
}

func TestGetComplexScratchGrowsForLargerRequest(t *testing.T) {
	_, handle := getComplexScratch(4)
	putComplexScratch(handle)

	buf, handle2 := getComplexScratch(64)
	if len(buf) != 64 {
		t.Fatalf("len(buf) = %d, want 64", len(buf))
	}
	putComplexScratch(handle2)
}

func TestPutComplexScratchNilHandleIsNoOp(t *testing.T) {
	putComplexScratch(nil)
}
