package scrappa

import "context"

// YouTubeClient wraps the YouTube endpoints.
type YouTubeClient struct {
	client Getter
}

func NewYouTubeClient(g Getter) *YouTubeClient {
	return &YouTubeClient{client: g}
}

// Video fetches information about the video at url.
func (y *YouTubeClient) Video(ctx context.Context, url string) (*Result, error) {
	if url == "" {
		return nil, missingParameter("url")
	}
	return y.client.Get(ctx, EndpointYouTubeVideo.Path(), Params{"url": url})
}
