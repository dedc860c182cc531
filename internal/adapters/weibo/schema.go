package weibo

type profileResponse struct {
	Data struct {
		User struct {
			ScreenName string `json:"screen_name"`
		} `json:"user"`
	} `json:"data"`
}

type postsResponse struct {
	Data struct {
		List []postEntry `json:"list"`
	} `json:"data"`
}

type postEntry struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
}

type detailResponse struct {
	TextRaw string `json:"text_raw"`
}

type commentResponse struct {
	OK  int    `json:"ok"`
	Msg string `json:"msg"`
}
