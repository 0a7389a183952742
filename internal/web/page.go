package web

import "html/template"

// pageTemplate is parsed at init time to fail fast on template errors.
var pageTemplate *template.Template

func init() {
	pageTemplate = template.Must(template.New("page").Parse(pageHTML))
}

// pageData feeds the page template.
type pageData struct {
	Questions []string
}

// pageHTML is the self-contained single-page UI: three panels matching
// the CLI menu modes. Chat history lives in the page and is sent with
// every chat request.
const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Legal AI Assistant</title>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #f4f5f7; color: #1f2430; }
  header { background: #1f2430; color: #fff; padding: 1rem 2rem; }
  header h1 { margin: 0; font-size: 1.3rem; }
  main { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; padding: 1.5rem 2rem; }
  .panel { background: #fff; border-radius: 8px; padding: 1rem 1.25rem; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
  .panel h2 { margin-top: 0; font-size: 1.05rem; }
  button { background: #2f5fd0; color: #fff; border: 0; border-radius: 5px; padding: .45rem .9rem; cursor: pointer; }
  button:disabled { background: #9aa7c0; }
  textarea, input[type=text] { width: 100%; box-sizing: border-box; padding: .5rem; border: 1px solid #cfd4de; border-radius: 5px; }
  ul.questions { list-style: none; padding: 0; }
  ul.questions li { margin: .35rem 0; }
  ul.questions button { width: 100%; text-align: left; background: #eef1f7; color: #1f2430; }
  .answer { margin-top: .75rem; padding: .65rem; background: #f0f6ee; border-radius: 5px; white-space: pre-wrap; }
  .answer.error { background: #fbeeee; }
  .sql { margin-top: .4rem; font-family: monospace; font-size: .8rem; color: #5a6372; white-space: pre-wrap; }
  .chatlog { height: 260px; overflow-y: auto; border: 1px solid #e2e5ec; border-radius: 5px; padding: .5rem; margin-bottom: .5rem; }
  .msg { margin: .3rem 0; }
  .msg.user { text-align: right; color: #2f5fd0; }
</style>
</head>
<body>
<header><h1>&#9878; Legal AI Assistant</h1></header>
<main>
  <section class="panel">
    <h2>Predefined Questions</h2>
    <ul class="questions">
      {{range .Questions}}<li><button onclick="runQuery(this.textContent, 'predef')">{{.}}</button></li>{{end}}
    </ul>
    <div id="predef-answer"></div>
  </section>

  <section class="panel">
    <h2>Custom Query</h2>
    <textarea id="custom-question" rows="3" placeholder="Ask anything about your legal data..."></textarea>
    <p><button id="custom-btn" onclick="runQuery(document.getElementById('custom-question').value, 'custom')">Ask</button></p>
    <div id="custom-answer"></div>
  </section>

  <section class="panel">
    <h2>Chat</h2>
    <div class="chatlog" id="chatlog"></div>
    <input type="text" id="chat-input" placeholder="Say something..." onkeydown="if(event.key==='Enter')sendChat()">
    <p><button id="chat-btn" onclick="sendChat()">Send</button></p>
  </section>
</main>
<script>
const chatHistory = [];

function show(target, html, isError) {
  const el = document.getElementById(target + '-answer');
  el.innerHTML = '';
  const div = document.createElement('div');
  div.className = 'answer' + (isError ? ' error' : '');
  div.textContent = html;
  el.appendChild(div);
}

async function runQuery(question, target) {
  if (!question.trim()) return;
  show(target, 'Thinking...');
  try {
    const resp = await fetch('/api/query', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({question})
    });
    const data = await resp.json();
    if (!resp.ok) { show(target, data.error || 'request failed', true); return; }
    show(target, data.answer);
    if (data.sql) {
      const sql = document.createElement('div');
      sql.className = 'sql';
      sql.textContent = data.sql;
      document.getElementById(target + '-answer').appendChild(sql);
    }
  } catch (err) {
    show(target, 'request failed: ' + err, true);
  }
}

function appendMsg(text, cls) {
  const div = document.createElement('div');
  div.className = 'msg ' + cls;
  div.textContent = text;
  const log = document.getElementById('chatlog');
  log.appendChild(div);
  log.scrollTop = log.scrollHeight;
}

async function sendChat() {
  const input = document.getElementById('chat-input');
  const message = input.value.trim();
  if (!message) return;
  input.value = '';
  appendMsg(message, 'user');
  try {
    const resp = await fetch('/api/chat', {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify({message, history: chatHistory})
    });
    const data = await resp.json();
    if (!resp.ok) { appendMsg(data.error || 'request failed', 'assistant'); return; }
    appendMsg(data.answer, 'assistant');
    chatHistory.push({user: message, assistant: data.answer});
  } catch (err) {
    appendMsg('request failed: ' + err, 'assistant');
  }
}
</script>
</body>
</html>
`
