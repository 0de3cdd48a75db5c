package gtu8080

import "testing"

func TestBankMapOverlapRejected(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 2, 0x8000)
	if err := b.Map(0x0000, 0x4000, 0, false); err != nil {
		t.Fatal(err)
	}
	err := b.Map(0x2000, 0x1000, 1, false)
	if err == nil {
		t.Fatalf("overlapping mapping should be rejected")
	}
	ce, ok := AsCoreError(err)
	if !ok || ce.Kind != KindMemoryAccessViolation {
		t.Fatalf("expected KindMemoryAccessViolation, got %v", err)
	}
}

func TestBankReadOnlyRejectsWrite(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 1, GuestAddressSpace)
	if err := b.Map(0x0000, 0x4000, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := b.Write(0x1000, 0x42); err == nil {
		t.Fatalf("write to read-only mapping should fail")
	}
	if got := b.Read(0x1000); got != 0 {
		t.Fatalf("read-only region should still read as 0, got 0x%02X", got)
	}
}

func TestBankSwitchFlushesListeners(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 2, 0x8000)
	flushed := false
	b.OnFlush(func() { flushed = true })
	if err := b.SwitchBank(1); err != nil {
		t.Fatal(err)
	}
	if !flushed {
		t.Fatalf("SwitchBank should invoke registered flush listeners")
	}
	if b.CurrentBank() != 1 {
		t.Fatalf("CurrentBank = %d, want 1", b.CurrentBank())
	}
}

func TestBankFallsThroughToCurrentBankWhenUnmapped(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 2, 0x8000)
	if err := b.SwitchBank(1); err != nil {
		t.Fatal(err)
	}
	if err := b.Write(0x10, 0x99); err != nil {
		t.Fatal(err)
	}
	requireEqualU8(t, "mem[0x10] via bank 1", b.Read(0x10), 0x99)

	if err := b.SwitchBank(0); err != nil {
		t.Fatal(err)
	}
	requireEqualU8(t, "mem[0x10] via bank 0", b.Read(0x10), 0x00)
}

func TestCacheRejectsReadOnlyWriteImmediately(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 1, GuestAddressSpace)
	if err := b.Map(0x0000, 0x4000, 0, true); err != nil {
		t.Fatal(err)
	}
	cache := NewByteCache(b, 4)

	err := cache.Write(0x1000, 0x42)
	if err == nil {
		t.Fatalf("write to read-only mapping through the cache should fail")
	}
	ce, ok := AsCoreError(err)
	if !ok || ce.Kind != KindMemoryAccessViolation {
		t.Fatalf("expected KindMemoryAccessViolation, got %v", err)
	}
	if got := cache.Read(0x1000); got != 0 {
		t.Fatalf("rejected write should not have reached the cache line, got 0x%02X", got)
	}
}

func TestCacheWriteBackOnFlush(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 1, GuestAddressSpace)
	cache := NewByteCache(b, 4)

	if err := cache.Write(0x1000, 0xAB); err != nil {
		t.Fatal(err)
	}
	if got := b.Read(0x1000); got != 0 {
		t.Fatalf("write-back cache should not write through before a flush, got 0x%02X", got)
	}
	cache.Flush()
	requireEqualU8(t, "bank after flush", b.Read(0x1000), 0xAB)
}

func TestCacheEvictsDirtyLineOnConflictingAddress(t *testing.T) {
	mem := NewMemory()
	b := NewBankController(mem, 1, GuestAddressSpace)
	cache := NewByteCache(b, 4) // mask = 3, so addr 0x1000 and 0x1004 collide

	if err := cache.Write(0x1000, 0x11); err != nil {
		t.Fatal(err)
	}
	if err := cache.Write(0x1004, 0x22); err != nil {
		t.Fatal(err)
	}
	requireEqualU8(t, "evicted line committed", b.Read(0x1000), 0x11)
	requireEqualU8(t, "new line value", cache.Read(0x1004), 0x22)
}
