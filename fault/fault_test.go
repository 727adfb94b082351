package fault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBnrFaultBijection(t *testing.T) {
	seenCode := map[BnrFault]string{}
	for code, info := range bnrFaultTable {
		if other, ok := seenCode[code]; ok {
			t.Fatalf("code %d shared by %q and %q", code.Code(), other, info.name)
		}
		seenCode[code] = info.name
		require.Equal(t, info.name, code.Name())
		require.Equal(t, code, FromCode(int32(code.Code())))
	}
}

func TestBnrFaultUnrecognized(t *testing.T) {
	f := FromCode(-1)
	assert.False(t, f.Known())
	assert.Equal(t, "Unrecognized(4294967295)", f.Name())
	assert.Nil(t, f.CorrectiveActions())
	assert.Equal(t, SeverityError, f.Severity())
	assert.Equal(t, SubsystemUnknown, f.Subsystem())
}

func TestBnrFaultSubsystemDecoding(t *testing.T) {
	for code, info := range bnrFaultTable {
		sub := code.Subsystem()
		if sub == SubsystemUnknown {
			continue
		}
		assert.Contains(t, info.name, string(sub))
	}
}

func TestBnrFaultSeverityPrefix(t *testing.T) {
	for code, info := range bnrFaultTable {
		if code.Severity() == SeverityWarning {
			assert.Equal(t, byte('W'), info.name[0])
		} else {
			assert.Equal(t, byte('E'), info.name[0])
		}
	}
}

func TestBnrFaultPlaceholdersPreservedVerbatim(t *testing.T) {
	found := false
	for code, info := range bnrFaultTable {
		if info.title == "" {
			found = true
			assert.Empty(t, code.CorrectiveActions())
		}
	}
	assert.True(t, found, "expected at least one undocumented placeholder fault, per spec.md open question on W_RE1xx entries")
}

func TestUsbFaultOffsetSpace(t *testing.T) {
	for code := range usbFaultNames {
		assert.GreaterOrEqual(t, uint32(code), uint32(usbFaultOffset))
	}
}

func TestUsbFaultFromOSErrorCode(t *testing.T) {
	f := FromOSErrorCode(42)
	assert.Equal(t, UsbFault(usbFaultOffset+42), f)
}

func TestUsbFaultUnrecognized(t *testing.T) {
	f := UsbFault(999999)
	assert.False(t, f.Known())
	assert.Equal(t, "Unrecognized(999999)", f.Name())
}

func TestUsbFaultBijection(t *testing.T) {
	seen := map[UsbFault]string{}
	for code, name := range usbFaultNames {
		if other, ok := seen[code]; ok {
			t.Fatalf("code %d shared by %q and %q", uint32(code), other, name)
		}
		seen[code] = name
	}
}
