package core

import "testing"

func TestRuntimeConfigDT(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = 20
	if cfg.DT() != 0.05 {
		t.Errorf("DT() at 20 ticks/s = %g, expected 0.05", cfg.DT())
	}
	cfg.TickRate = 0
	if cfg.DT() <= 0 {
		t.Error("DT() must stay positive for a zero tick rate")
	}
}

func TestActionCropSlot(t *testing.T) {
	if slot, ok := ActionCrop1.CropSlot(); !ok || slot != 0 {
		t.Errorf("ActionCrop1.CropSlot() = %d, %v", slot, ok)
	}
	if slot, ok := ActionCrop4.CropSlot(); !ok || slot != 3 {
		t.Errorf("ActionCrop4.CropSlot() = %d, %v", slot, ok)
	}
	if _, ok := ActionUse.CropSlot(); ok {
		t.Error("ActionUse is not a crop slot")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionUse) {
		t.Error("zero frame should be empty")
	}
	f.Set(ActionUse)
	if !f.Has(ActionUse) || f.Empty() {
		t.Error("Set should mark the action")
	}
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should reset the frame")
	}
}
