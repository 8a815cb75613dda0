package polyclip

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.background != DarkGray {
		t.Errorf("default background = %v, want %v", o.background, DarkGray)
	}
}

func TestWithBackground(t *testing.T) {
	buf, err := NewBuffer(3, 3, WithBackground(White))
	if err != nil {
		t.Fatal(err)
	}
	if buf.Background() != White {
		t.Errorf("Background() = %v, want %v", buf.Background(), White)
	}
	if got := buf.GetPixel(1, 1); got != White {
		t.Errorf("pixel = %v, want %v", got, White)
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	buf, err := NewBuffer(2, 2, WithBackground(Red), WithBackground(Blue))
	if err != nil {
		t.Fatal(err)
	}
	if buf.Background() != Blue {
		t.Errorf("Background() = %v, want last option %v", buf.Background(), Blue)
	}
}
