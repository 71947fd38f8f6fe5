package capture

import "fmt"

// Validate checks the structural invariants a normalized Capture must
// satisfy before it reaches the Resource Manager or Renderer Core.
// container.Parse calls this after normalization; it is exported so
// hand-built captures (tests, synthetic fixtures) can check themselves
// too.
func (c *Capture) Validate() error {
	if n := len(c.Views); n != 1 && n != 2 {
		return fmt.Errorf("capture: views length must be 1 or 2, got %d", n)
	}
	for vi, v := range c.Views {
		if n := len(v.Layers); n < 1 || n > 4 {
			return fmt.Errorf("capture: view %d layers length must be in [1,4], got %d", vi, n)
		}
		for li, l := range v.Layers {
			if l.InvZMap.Min <= 0 {
				return fmt.Errorf("capture: view %d layer %d inv_z_map.min (%g) must be > 0", vi, li, l.InvZMap.Min)
			}
			if l.InvZMap.Min <= l.InvZMap.Max {
				return fmt.Errorf("capture: view %d layer %d inv_z_map.min (%g) must be > max (%g)", vi, li, l.InvZMap.Min, l.InvZMap.Max)
			}
			if l.WidthPx != v.WidthPx && l.WidthPx > 0 && v.WidthPx > 0 {
				expected := v.FocalPx * float64(l.WidthPx) / float64(v.WidthPx)
				if l.FocalPx == 0 {
					return fmt.Errorf("capture: view %d layer %d focal_px must be rescaled for its width_px (expected ~%g)", vi, li, expected)
				}
			}
		}
	}
	return nil
}
