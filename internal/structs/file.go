package structs

type UploadedFile struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
