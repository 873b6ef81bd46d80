// Package domain contains the core model for the web presentation demos:
// requests routed by the application controller and the entities fed to the
// two-stage renderer.
//
// The domain is transport- and persistence-agnostic: it does not depend on YAML parsing,
// JSON decoding, or the filesystem. Infra/adapters map into/from these types.
package domain
