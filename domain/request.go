package domain

type SynthesizeReq struct {
	Stid string `json:"stid" query:"stid"`
}

type BulkReq struct {
	IDs  []string `json:"ids"`
	Stid string   `json:"stid"`
}

type BulkResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ArtifactURLResp struct {
	URL string `json:"url"`
}
