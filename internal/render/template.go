package render

import "html/template"

var timelineTmpl = template.Must(template.New("timeline").Parse(timelineTemplate))

const timelineTemplate = `<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>X.com exports – {{.Label}}</title>
    <style>
      :root {
        color-scheme: dark;
        font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
        background-color: #0f1419;
        color: #e7e9ea;
      }
      body {
        margin: 0;
        padding: 0 0 4rem;
      }
      header.page-header {
        position: sticky;
        top: 0;
        backdrop-filter: blur(12px);
        background: rgba(15, 20, 25, 0.85);
        padding: 1.2rem 1.6rem;
        border-bottom: 1px solid rgba(231, 233, 234, 0.2);
      }
      header.page-header h1 {
        margin: 0 0 0.4rem;
        font-size: 1.5rem;
        font-weight: 700;
      }
      header.page-header p {
        margin: 0;
        color: #8b98a5;
        font-size: 0.95rem;
      }
      .tools {
        display: flex;
        flex-wrap: wrap;
        gap: 0.8rem;
        align-items: center;
        margin-top: 0.9rem;
      }
      #search-box {
        flex: 1 1 220px;
        padding: 0.45rem 0.9rem;
        border-radius: 999px;
        border: 1px solid rgba(113, 118, 123, 0.4);
        background: rgba(15, 20, 25, 0.6);
        color: #e7e9ea;
        outline: none;
        font-size: 0.95rem;
        transition: border-color 0.2s;
      }
      #search-box:focus {
        border-color: rgba(29, 155, 240, 0.7);
      }
      .filters {
        display: flex;
        gap: 0.6rem;
        flex-wrap: wrap;
      }
      .filters button {
        border: 1px solid rgba(113, 118, 123, 0.4);
        border-radius: 999px;
        padding: 0.2rem 0.9rem;
        background: transparent;
        color: #e7e9ea;
        cursor: pointer;
        transition: background 0.2s;
      }
      .filters button.active,
      .filters button:hover {
        background: rgba(29, 155, 240, 0.2);
        border-color: rgba(29, 155, 240, 0.7);
      }
      main.timeline {
        max-width: 720px;
        margin: 0 auto;
        padding: 1rem 1.2rem;
        display: flex;
        flex-direction: column;
        gap: 1rem;
      }
      article.tweet {
        border: 1px solid rgba(113, 118, 123, 0.4);
        border-radius: 16px;
        padding: 1rem;
        background: rgba(15, 20, 25, 0.7);
        display: flex;
        flex-direction: column;
        gap: 0.75rem;
      }
      .tweet-header {
        display: flex;
        align-items: center;
        gap: 0.8rem;
      }
      .avatar-circle {
        width: 48px;
        height: 48px;
        border-radius: 50%;
        background: #1d9bf0;
        display: flex;
        align-items: center;
        justify-content: center;
        font-weight: 700;
        font-size: 1.2rem;
        color: #0f1419;
      }
      .author {
        display: flex;
        gap: 0.4rem;
        align-items: baseline;
      }
      .display-name {
        font-weight: 700;
      }
      .handle {
        color: #8b98a5;
      }
      .timestamp {
        color: #8b98a5;
        font-size: 0.9rem;
        text-decoration: none;
      }
      .tweet-body {
        white-space: pre-wrap;
        font-size: 1.05rem;
        line-height: 1.45;
      }
      .tweet-body a {
        color: #1d9bf0;
        text-decoration: none;
      }
      .tweet-body a:hover {
        text-decoration: underline;
      }
      .tweet-hashtags, .tweet-mentions {
        display: flex;
        flex-wrap: wrap;
        gap: 0.5rem;
        color: #1d9bf0;
      }
      .attachments {
        display: grid;
        gap: 0.6rem;
      }
      .attachments img {
        max-width: 100%;
        border-radius: 12px;
      }
      .attachments video {
        max-width: 100%;
        border-radius: 12px;
      }
      .attachment-file {
        color: #1d9bf0;
      }
      footer.tweet-stats {
        display: flex;
        flex-wrap: wrap;
        gap: 0.8rem;
        color: #8b98a5;
        font-size: 0.9rem;
      }
      .hidden {
        display: none !important;
      }
    </style>
  </head>
  <body>
    <header class="page-header">
      <h1>X.com exports – {{.Label}}</h1>
      <p>{{.Count}} post(s) available offline.</p>
      <div class="tools">
        <input type="search" id="search-box" placeholder="Search the timeline…" autocomplete="off">
        {{if .Tags}}<div class="filters">
          <button data-tag="__all__" class="active">All</button>
          {{range .Tags}}<button data-tag="{{.}}">#{{.}}</button>
          {{end}}</div>{{end}}
      </div>
    </header>
    <main class="timeline">
      {{range .Items}}<article class="tweet" data-hashtags="{{.TagAttr}}" data-search="{{.Search}}">
        <header class="tweet-header">
          <div class="avatar-circle">{{.Avatar}}</div>
          <div>
            <div class="author">
              <span class="display-name">{{.DisplayName}}</span>
              <span class="handle">@{{.Handle}}</span>
            </div>
            <a class="timestamp" href="{{.Permalink}}" target="_blank">{{.DateDisplay}}</a>
          </div>
        </header>
        <div class="tweet-body" lang="{{.Lang}}">{{.Body}}</div>
        {{if .Mentions}}<div class="tweet-mentions">{{range .Mentions}}<a href="https://x.com/{{.}}" target="_blank">@{{.}}</a> {{end}}</div>
        {{end}}{{if .Hashtags}}<div class="tweet-hashtags">{{range .Hashtags}}<a href="https://x.com/hashtag/{{.}}" target="_blank">#{{.}}</a> {{end}}</div>
        {{end}}{{if .Attachments}}<div class="attachments">
          {{range .Attachments}}{{if eq .Kind "image"}}<figure class="attachment-image"><img src="{{.Path}}"{{if .Alt}} alt="{{.Alt}}"{{end}}></figure>
          {{else if eq .Kind "video"}}<figure class="attachment-video"><video controls preload="metadata"><source src="{{.Path}}" type="video/mp4">Your browser cannot play this video offline.</video></figure>
          {{else}}<div class="attachment-file"><a href="{{.Path}}" download>Download {{.Path}}</a></div>
          {{end}}{{end}}</div>
        {{end}}{{if .Stats}}<footer class="tweet-stats">{{range .Stats}}<span class="stat stat-{{.Key}}">{{.Label}}: {{.Value}}</span> {{end}}</footer>
        {{end}}</article>
      {{end}}</main>
    <script>
      const filterButtons = document.querySelectorAll('.filters button');
      const tweets = document.querySelectorAll('article.tweet');
      const searchInput = document.querySelector('#search-box');
      let activeTag = '__all__';

      function applyFilters() {
        const query = (searchInput?.value || '').trim().toLowerCase();
        tweets.forEach(tweet => {
          const matchesTag = activeTag === '__all__' || (tweet.dataset.hashtags || '').split(',').filter(Boolean).includes(activeTag);
          const matchesText = !query || (tweet.dataset.search || '').includes(query);
          if (matchesTag && matchesText) {
            tweet.classList.remove('hidden');
          } else {
            tweet.classList.add('hidden');
          }
        });
      }

      filterButtons.forEach(btn => {
        btn.addEventListener('click', () => {
          filterButtons.forEach(b => b.classList.remove('active'));
          btn.classList.add('active');
          activeTag = btn.dataset.tag || '__all__';
          applyFilters();
        });
      });

      if (searchInput) {
        searchInput.addEventListener('input', applyFilters);
      }
    </script>
  </body>
</html>
`
