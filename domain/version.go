package domain

import "github.com/go-bnr/bnr/xfs"

// Version is a simple major.minor pair used in firmware/module version
// requirements.
type Version struct {
	Major int32
	Minor int32
}

const recordVersion = "version"

func (v Version) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("major", int4Value(v.Major)),
		member("minor", int4Value(v.Minor)),
	}})
}

func VersionFromValue(v xfs.Value) (Version, error) {
	var out Version
	s := v.Struct()
	if s == nil {
		return out, missing(recordVersion, "<struct>")
	}
	var err error
	if out.Major, err = requireInt4(s, recordVersion, "major"); err != nil {
		return out, err
	}
	if out.Minor, err = requireInt4(s, recordVersion, "minor"); err != nil {
		return out, err
	}
	return out, nil
}

// VersionRequirement names a minimum Version for a given module/component
// pair, for capability and firmware version checks.
type VersionRequirement struct {
	ModuleType    int32
	ComponentType int32
	Version       Version
}

const recordVersionRequirement = "versionRequirement"

func (r VersionRequirement) Value() xfs.Value {
	return xfs.StructValue(xfs.Struct{Members: []xfs.Member{
		member("moduleType", int4Value(r.ModuleType)),
		member("componentType", int4Value(r.ComponentType)),
		member("version", r.Version.Value()),
	}})
}

func VersionRequirementFromValue(v xfs.Value) (VersionRequirement, error) {
	var out VersionRequirement
	s := v.Struct()
	if s == nil {
		return out, missing(recordVersionRequirement, "<struct>")
	}
	var err error
	if out.ModuleType, err = requireInt4(s, recordVersionRequirement, "moduleType"); err != nil {
		return out, err
	}
	if out.ComponentType, err = requireInt4(s, recordVersionRequirement, "componentType"); err != nil {
		return out, err
	}
	versionValue, ok := s.Get("version")
	if !ok {
		return out, missing(recordVersionRequirement, "version")
	}
	if out.Version, err = VersionFromValue(versionValue); err != nil {
		return out, err
	}
	return out, nil
}
