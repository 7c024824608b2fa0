package firestore

import "strings"

// Document is a Firestore REST document resource.
type Document struct {
	// Name is the full resource path, projects/{p}/databases/{d}/documents/{collection}/{id}.
	Name       string `json:"name,omitempty"`
	Fields     Fields `json:"fields,omitempty"`
	CreateTime string `json:"createTime,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}

// ID returns the last segment of the resource path, or "" when the document has no name.
func (d Document) ID() string {
	return IDFromName(d.Name)
}

// IDFromName returns the last segment of a resource path.
func IDFromName(name string) string {
	name = strings.TrimRight(name, "/")
	if name == "" {
		return ""
	}
	return name[strings.LastIndex(name, "/")+1:]
}

type listDocumentsResponse struct {
	Documents     []Document `json:"documents"`
	NextPageToken string     `json:"nextPageToken,omitempty"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
