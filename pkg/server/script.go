package server

// ClientScript keeps the container in sync with the server and reports
// user interaction back over the websocket.
//
// Clicks on [data-toast-close] dismiss, clicks on [data-action] are sent
// as action messages. Draggable toasts pause while held and are dismissed
// once dragged past data-draggable-percent of their size along
// data-draggable-direction.
//
// Render messages are patched in place: a toast whose id and in/out state
// are unchanged keeps its element, so running animations do not restart.
const ClientScript = `
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var ws = null;

    function send(msg) {
        if (ws && ws.readyState === WebSocket.OPEN) {
            ws.send(JSON.stringify(msg));
        }
    }

    function toastOf(el) {
        return el && el.closest ? el.closest('[data-toast-id]') : null;
    }

    function syncToast(old, next) {
        var dragging = drag && drag.el === old;
        for (var i = 0; i < next.attributes.length; i++) {
            var a = next.attributes[i];
            if (a.name !== 'class' && !(dragging && a.name === 'style')) {
                old.setAttribute(a.name, a.value);
            }
        }
        var ob = old.querySelector('.Toastify__toast-body');
        var nb = next.querySelector('.Toastify__toast-body');
        if (ob && nb && ob.innerHTML !== nb.innerHTML) {
            ob.replaceWith(nb);
        }
        var op = old.querySelector('.Toastify__progress-bar');
        var np = next.querySelector('.Toastify__progress-bar');
        if (op && np) {
            op.setAttribute('style', np.getAttribute('style') || '');
        } else if (op) {
            op.remove();
        } else if (np) {
            old.appendChild(np);
        }
    }

    function patchWrapper(old, next) {
        old.className = next.className;
        old.setAttribute('style', next.getAttribute('style') || '');

        var keep = {};
        var wanted = Array.prototype.slice.call(next.children).map(function(nt) {
            var ot = document.getElementById(nt.id);
            if (ot && ot.parentNode === old && ot.dataset.in === nt.dataset.in) {
                syncToast(ot, nt);
                keep[nt.id] = true;
                return ot;
            }
            return nt;
        });
        Array.prototype.slice.call(old.children).forEach(function(ot) {
            if (!keep[ot.id]) {
                ot.remove();
            }
        });
        wanted.forEach(function(el, i) {
            if (old.children[i] !== el) {
                old.insertBefore(el, old.children[i] || null);
            }
        });
    }

    function patch(html) {
        var tpl = document.createElement('template');
        tpl.innerHTML = html.trim();
        var next = tpl.content.firstElementChild;
        var root = document.querySelector('.Toastify');
        if (!next || !root) {
            return;
        }
        if (root.children.length !== next.children.length) {
            root.replaceWith(next);
            return;
        }
        for (var i = 0; i < next.children.length; i++) {
            patchWrapper(root.children[i], next.children[i]);
        }
    }

    // drag follows the pointer on a draggable toast; dragged is set once
    // it moved, so the click that ends a drag does not close the toast.
    var drag = null;
    var dragged = false;

    document.addEventListener('pointerdown', function(e) {
        var el = toastOf(e.target);
        if (!el || el.dataset.draggable !== 'true' || el.dataset.in !== 'true' || e.button !== 0) {
            return;
        }
        if (e.target.closest('button')) {
            return;
        }
        var axis = el.dataset.draggableDirection === 'y' ? 'y' : 'x';
        var rect = el.getBoundingClientRect();
        drag = {
            el: el,
            axis: axis,
            start: axis === 'x' ? e.clientX : e.clientY,
            delta: 0,
            removal: (axis === 'x' ? rect.width : rect.height) * (parseInt(el.dataset.draggablePercent, 10) || 80) / 100
        };
        dragged = false;
        if (el.setPointerCapture) {
            el.setPointerCapture(e.pointerId);
        }
        el.classList.add('Toastify__toast--dragging');
        send({type: 'pause', id: el.dataset.toastId});
    });

    document.addEventListener('pointermove', function(e) {
        if (!drag) {
            return;
        }
        drag.delta = (drag.axis === 'x' ? e.clientX : e.clientY) - drag.start;
        if (Math.abs(drag.delta) > 3) {
            dragged = true;
        }
        drag.el.style.translate = drag.axis === 'x' ? drag.delta + 'px 0' : '0 ' + drag.delta + 'px';
    });

    function endDrag() {
        if (!drag) {
            return;
        }
        var d = drag;
        drag = null;
        d.el.classList.remove('Toastify__toast--dragging');
        var id = d.el.dataset.toastId;
        if (Math.abs(d.delta) >= d.removal) {
            send({type: 'dismiss', id: id});
            return;
        }
        d.el.style.translate = '';
        if (!(d.el.dataset.pauseOnHover === 'true' && d.el.matches(':hover'))) {
            send({type: 'resume', id: id});
        }
    }

    document.addEventListener('pointerup', endDrag);
    document.addEventListener('pointercancel', endDrag);

    document.addEventListener('click', function(e) {
        var el = toastOf(e.target);
        if (!el) {
            return;
        }
        if (dragged) {
            dragged = false;
            return;
        }
        var id = el.dataset.toastId;
        if (e.target.closest('[data-toast-close]')) {
            e.stopPropagation();
            send({type: 'dismiss', id: id});
            return;
        }
        var action = e.target.closest('[data-action]');
        if (action && el.contains(action)) {
            e.stopPropagation();
            send({type: 'action', id: id, action: action.dataset.action});
            return;
        }
        if (el.dataset.closeOnClick === 'true') {
            send({type: 'dismiss', id: id});
        }
    });

    document.addEventListener('mouseover', function(e) {
        var el = toastOf(e.target);
        if (el && !el.contains(e.relatedTarget) && el.dataset.pauseOnHover === 'true') {
            send({type: 'pause', id: el.dataset.toastId});
        }
    });

    document.addEventListener('mouseout', function(e) {
        var el = toastOf(e.target);
        if (el && !el.contains(e.relatedTarget) && el.dataset.pauseOnHover === 'true') {
            send({type: 'resume', id: el.dataset.toastId});
        }
    });

    document.addEventListener('animationend', function(e) {
        var el = e.target;
        if (el.dataset && el.dataset.toastId && el.dataset.in === 'false') {
            send({type: 'remove', id: el.dataset.toastId});
        }
    });

    window.addEventListener('blur', function() { send({type: 'blur'}); });
    window.addEventListener('focus', function() { send({type: 'focus'}); });

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }
            if (msg.type === 'render') {
                patch(msg.html);
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    connect();
})();
`

// BaseStyles positions the wrappers and defines the default animations.
const BaseStyles = `
.Toastify__toast-container{position:fixed;z-index:9999;width:320px;padding:4px;box-sizing:border-box}
.Toastify__toast-container--top-left{top:1em;left:1em}
.Toastify__toast-container--top-center{top:1em;left:50%;transform:translateX(-50%)}
.Toastify__toast-container--top-right{top:1em;right:1em}
.Toastify__toast-container--bottom-left{bottom:1em;left:1em}
.Toastify__toast-container--bottom-center{bottom:1em;left:50%;transform:translateX(-50%)}
.Toastify__toast-container--bottom-right{bottom:1em;right:1em}
.Toastify__toast{position:relative;display:flex;min-height:64px;margin-bottom:1rem;padding:8px;border-radius:6px;box-shadow:0 1px 10px rgba(0,0,0,.1);overflow:hidden;font-family:sans-serif;cursor:default}
.Toastify__toast--rtl{direction:rtl}
.Toastify__toast-body{flex:1;margin:auto 0;padding:6px}
.Toastify__toast-theme--light{background:#fff;color:#757575}
.Toastify__toast-theme--dark{background:#121212;color:#fff}
.Toastify__toast-theme--colored.Toastify__toast--info{background:#3498db;color:#fff}
.Toastify__toast-theme--colored.Toastify__toast--success{background:#07bc0c;color:#fff}
.Toastify__toast-theme--colored.Toastify__toast--warning{background:#f1c40f;color:#fff}
.Toastify__toast-theme--colored.Toastify__toast--error{background:#e74c3c;color:#fff}
.Toastify__close-button{align-self:flex-start;background:transparent;border:none;cursor:pointer;opacity:.7;color:inherit}
.Toastify__close-button svg{width:14px;height:16px;fill:currentColor}
.Toastify__toast-action{margin-left:8px;background:transparent;border:1px solid currentColor;border-radius:4px;color:inherit;cursor:pointer}
.Toastify__toast[data-draggable-direction="x"]{touch-action:pan-y}
.Toastify__toast[data-draggable-direction="y"]{touch-action:pan-x}
.Toastify__toast--dragging{cursor:grabbing;user-select:none}
.Toastify__progress-bar{position:absolute;bottom:0;left:0;width:100%;height:5px;transform-origin:left;background:#bb86fc}
.Toastify__progress-bar--animated{animation:Toastify__trackProgress linear 1 forwards}
.Toastify__progress-bar--rtl{transform-origin:right}
@keyframes Toastify__trackProgress{0%{transform:scaleX(1)}100%{transform:scaleX(0)}}
.Toastify--animate{animation-fill-mode:both;animation-duration:.7s}
@keyframes Toastify__fadeIn{from{opacity:0;transform:translateY(-12px)}to{opacity:1;transform:none}}
@keyframes Toastify__fadeOut{from{opacity:1}to{opacity:0;transform:scale(.9)}}
[class*="-enter"]{animation-name:Toastify__fadeIn}
[class*="-exit"]{animation-name:Toastify__fadeOut}
`
