// Package rules defines icon rules: a kind (file, folder or icon
// override), an icon, and an ordered list of conditions whose disjunction
// decides whether the rule applies to a path.
//
// Rules come from three places. Bundled rules are built once from the
// catalog; only their enabled state changes, through the disabled-id set
// of the settings. User rules arrive as ordered lists from the settings
// files and icon packs. Alternate rules are derived from a rule's extra
// icons and are never stored:
//
//	docker        extra-icons/docker.svg
//	docker_alt    extra-icons/docker_alt.svg     (alternative 1)
//	docker_alt2   extra-icons/docker_alt2.svg    (alternative 2)
//
// An alternate carries the conditions of its origin and points back to it
// through ParentID.
//
// Settings files and icon packs store rules as a Spec:
//
//	[[rules]]
//	id = "my_json"
//	kind = "file"
//	icon = "extra-icons/json.svg"
//	description = "JSON files"
//
//	[[rules.conditions]]
//	suffix = [".json"]
package rules
