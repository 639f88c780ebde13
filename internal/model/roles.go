package model

// RoleMap maps UI Automation control type ids to compact role codes.
var RoleMap = map[int]string{
	50000: "btn",      // Button
	50002: "chk",      // CheckBox
	50003: "combo",    // ComboBox
	50004: "input",    // Edit
	50005: "lnk",      // Hyperlink
	50006: "img",      // Image
	50007: "listitem", // ListItem
	50008: "list",     // List
	50009: "menu",     // Menu
	50010: "menu",     // MenuBar
	50011: "menuitem", // MenuItem
	50013: "radio",    // RadioButton
	50018: "tab",      // Tab
	50020: "txt",      // Text
	50021: "toolbar",  // ToolBar
	50023: "tree",     // Tree
	50024: "treeitem", // TreeItem
	50026: "group",    // Group
	50028: "list",     // DataGrid
	50029: "row",      // DataItem
	50030: "doc",      // Document
	50032: "window",   // Window
	50033: "pane",     // Pane
	50036: "list",     // Table
}

// TextRoles are the roles that usually expose a text pattern.
var TextRoles = []string{"input", "doc", "txt", "combo"}

// MapControlType converts a raw control type id to a compact code.
func MapControlType(controlType int) string {
	if short, ok := RoleMap[controlType]; ok {
		return short
	}
	return "other"
}

// IsTextRole reports whether role is one of TextRoles.
func IsTextRole(role string) bool {
	for _, r := range TextRoles {
		if r == role {
			return true
		}
	}
	return false
}
