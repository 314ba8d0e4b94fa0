package web

type UploadResp struct {
	URL string `json:"url"`
}

type TmpAuthCodeReq struct {
	// 对象键，例如 logos/a.jpg
	Key string `json:"key"`
	// 内容类型，例如 image/png
	Type string `json:"type"`
}

type COSTmpAuthCode struct {
	SecretId     string `json:"secretId"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	StartTime    int64  `json:"startTime"`
	ExpiredTime  int64  `json:"expiredTime"`
}
