package http

import "net/http"

// NewIndexHandler creates handlerfunc serving the search page.
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexPage))
	}
}

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ghscout</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; }
#results li { font-family: monospace; white-space: pre; }
#warnings { color: #a33; }
</style>
</head>
<body>
<h1>ghscout</h1>
<p>Welcome to this simple GitHub search. I hope you find what you are looking for!</p>
<form id="search">
  <label><input type="radio" name="type" value="org" checked> organization members</label>
  <label><input type="radio" name="type" value="user"> user repositories</label>
  <input id="name" name="name" maxlength="39" placeholder="name">
  <button type="submit">Search</button>
</form>
<p id="status"></p>
<ul id="results"></ul>
<ul id="warnings"></ul>
<script>
document.getElementById("search").addEventListener("submit", function (ev) {
  ev.preventDefault();
  var type = document.querySelector("input[name=type]:checked").value;
  var name = document.getElementById("name").value.trim();
  var status = document.getElementById("status");
  var results = document.getElementById("results");
  var warnings = document.getElementById("warnings");
  results.innerHTML = "";
  warnings.innerHTML = "";
  status.textContent = "Searching, this may take some time...";
  fetch("/api/search?type=" + type + "&name=" + encodeURIComponent(name))
    .then(function (resp) {
      if (!resp.ok) { return resp.text().then(function (t) { throw new Error(t || resp.statusText); }); }
      return resp.json();
    })
    .then(function (data) {
      var items = [];
      if (data.type === "org") {
        (data.members || []).forEach(function (m) {
          items.push(m.login + (m.name ? "  " + m.name : "") + (m.email ? "  <" + m.email + ">" : ""));
        });
        status.textContent = "Members of '" + data.name + "': " + items.length;
      } else {
        (data.repos || []).forEach(function (r) {
          items.push(r.repo + "  commits: " + r.commits + "  last: " + r.lastCommit);
        });
        status.textContent = "Repositories with commits by '" + data.name + "': " + items.length;
      }
      items.forEach(function (text) {
        var li = document.createElement("li");
        li.textContent = text;
        results.appendChild(li);
      });
      (data.warnings || []).forEach(function (text) {
        var li = document.createElement("li");
        li.textContent = text;
        warnings.appendChild(li);
      });
    })
    .catch(function (err) { status.textContent = "Search failed: " + err.message; });
});
</script>
</body>
</html>
`
