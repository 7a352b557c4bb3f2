// Package iconpack reads and writes icon packs: named rule collections
// shared as YAML documents.
//
// A pack file looks like:
//
//	name: team-icons
//	description: Icons for our build files
//	rules:
//	  - id: team_build
//	    kind: file
//	    icon: extra-icons/team_build.svg
//	    conditions:
//	      - exact: [build]
//	        suffix: [.team]
//
// Installed packs live in paths.PacksPath(). Rules read from a pack carry
// the pack name in SourcePack.
package iconpack
